package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/service"
)

type CatalogHandler struct {
	rateCharts *service.RateChartService
	feeds      *service.FeedService
}

func NewCatalogHandler(rateCharts *service.RateChartService, feeds *service.FeedService) *CatalogHandler {
	return &CatalogHandler{rateCharts: rateCharts, feeds: feeds}
}

type rateChartRequest struct {
	Fat           float64 `json:"fat"`
	SNF           float64 `json:"snf"`
	RatePerLiter  float64 `json:"ratePerLiter"`
	EffectiveFrom string  `json:"effectiveFrom"`
}

func (h *CatalogHandler) CreateRateChartRow(c *gin.Context) {
	var req rateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	row := models.RateChartRow{
		Fat:           req.Fat,
		SNF:           req.SNF,
		RatePerLiter:  req.RatePerLiter,
		EffectiveFrom: req.EffectiveFrom,
	}
	if err := h.rateCharts.Save(c.Request.Context(), &row); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) UpdateRateChartRow(c *gin.Context) {
	var req rateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	row := models.RateChartRow{
		ID:            c.Param("id"),
		Fat:           req.Fat,
		SNF:           req.SNF,
		RatePerLiter:  req.RatePerLiter,
		EffectiveFrom: req.EffectiveFrom,
	}
	if err := h.rateCharts.Save(c.Request.Context(), &row); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) ListRateChart(c *gin.Context) {
	rows, err := h.rateCharts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *CatalogHandler) DeleteRateChartRow(c *gin.Context) {
	if err := h.rateCharts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// LookupRate serves ?fat=&snf=[&date=yyyy-mm-dd].
func (h *CatalogHandler) LookupRate(c *gin.Context) {
	fat, err := strconv.ParseFloat(c.Query("fat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fat query parameter must be a number"})
		return
	}
	snf, err := strconv.ParseFloat(c.Query("snf"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "snf query parameter must be a number"})
		return
	}

	rate, err := h.rateCharts.LookupRate(c.Request.Context(), fat, snf, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate": rate})
}

type feedRequest struct {
	FarmerID   string  `json:"farmerId" binding:"required"`
	FarmerName string  `json:"farmerName"`
	FeedName   string  `json:"feedName" binding:"required"`
	Rate       float64 `json:"rate"`
}

func (h *CatalogHandler) CreateFeed(c *gin.Context) {
	var req feedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry := models.FeedEntry{
		FarmerID:   req.FarmerID,
		FarmerName: req.FarmerName,
		FeedName:   req.FeedName,
		Rate:       req.Rate,
	}
	if err := h.feeds.Add(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *CatalogHandler) ListFeeds(c *gin.Context) {
	entries, err := h.feeds.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feeds": entries})
}

func (h *CatalogHandler) UpdateFeed(c *gin.Context) {
	var req feedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry := models.FeedEntry{
		ID:         c.Param("id"),
		FarmerID:   req.FarmerID,
		FarmerName: req.FarmerName,
		FeedName:   req.FeedName,
		Rate:       req.Rate,
	}
	if err := h.feeds.Update(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) DeleteFeed(c *gin.Context) {
	if err := h.feeds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

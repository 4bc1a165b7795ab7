package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/service"
)

type AdvanceHandler struct {
	advances *service.AdvanceService
}

func NewAdvanceHandler(advances *service.AdvanceService) *AdvanceHandler {
	return &AdvanceHandler{advances: advances}
}

type advanceRequest struct {
	Date        string  `json:"date" binding:"required"`
	FarmerID    string  `json:"farmerId" binding:"required"`
	FarmerName  string  `json:"farmerName"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (h *AdvanceHandler) CreateCash(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry := models.AdvanceEntry{
		Date:        req.Date,
		FarmerID:    req.FarmerID,
		FarmerName:  req.FarmerName,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := h.advances.AddCash(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *AdvanceHandler) ListCash(c *gin.Context) {
	summary, err := h.advances.ListCash(c.Request.Context(), c.Query("farmerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AdvanceHandler) DeleteCash(c *gin.Context) {
	if err := h.advances.DeleteCash(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *AdvanceHandler) CreateSupplement(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry := models.SupplementEntry{
		Date:        req.Date,
		FarmerID:    req.FarmerID,
		FarmerName:  req.FarmerName,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := h.advances.AddSupplement(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *AdvanceHandler) ListSupplements(c *gin.Context) {
	summary, err := h.advances.ListSupplements(c.Request.Context(), c.Query("farmerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AdvanceHandler) DeleteSupplement(c *gin.Context) {
	if err := h.advances.DeleteSupplement(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

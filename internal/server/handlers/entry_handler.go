package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smerla/milkbook/internal/ledger"
	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/service"
)

type EntryHandler struct {
	entries *service.EntryService
}

func NewEntryHandler(entries *service.EntryService) *EntryHandler {
	return &EntryHandler{entries: entries}
}

type entryRequest struct {
	Session    string  `json:"session" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	FarmerID   string  `json:"farmerId" binding:"required"`
	FarmerName string  `json:"farmerName"`
	Liters     float64 `json:"liters"`
	Fat        float64 `json:"fat"`
	SNF        float64 `json:"snf"`
	Rate       float64 `json:"rate"`
}

func (r entryRequest) toModel() models.MilkEntry {
	return models.MilkEntry{
		Session:    models.Session(r.Session),
		Date:       r.Date,
		FarmerID:   r.FarmerID,
		FarmerName: r.FarmerName,
		Liters:     r.Liters,
		Fat:        r.Fat,
		SNF:        r.SNF,
		Rate:       r.Rate,
	}
}

func (h *EntryHandler) Create(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry := req.toModel()
	if err := h.entries.Save(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// List supports ?from=&to=&farmerId= query filters; all optional.
func (h *EntryHandler) List(c *gin.Context) {
	filter := ledger.EntryFilter{
		From:     c.Query("from"),
		To:       c.Query("to"),
		FarmerID: c.Query("farmerId"),
	}
	entries, err := h.entries.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *EntryHandler) Update(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry := req.toModel()
	entry.ID = c.Param("id")
	if err := h.entries.Update(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RequestDeletion starts the two-phase removal and returns the
// confirmation token with the entry about to be deleted.
func (h *EntryHandler) RequestDeletion(c *gin.Context) {
	req, err := h.entries.RequestDeletion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

type confirmDeletionRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *EntryHandler) ConfirmDeletion(c *gin.Context) {
	var req confirmDeletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.entries.ConfirmDeletion(c.Request.Context(), req.Token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

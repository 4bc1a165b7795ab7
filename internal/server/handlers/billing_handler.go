package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/service"
)

type BillingHandler struct {
	billing *service.BillingService
}

func NewBillingHandler(billing *service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

type createInvoiceRequest struct {
	FarmerID    string `json:"farmerId" binding:"required"`
	PeriodStart string `json:"periodStart" binding:"required"`
	PeriodEnd   string `json:"periodEnd" binding:"required"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func (h *BillingHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invoice, err := h.billing.CreateInvoice(c.Request.Context(), req.FarmerID, req.PeriodStart, req.PeriodEnd, req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// List supports ?farmerId=&periodStart=&periodEnd=&status= query filters.
func (h *BillingHandler) List(c *gin.Context) {
	filter := models.InvoiceFilter{
		FarmerID:    c.Query("farmerId"),
		PeriodStart: c.Query("periodStart"),
		PeriodEnd:   c.Query("periodEnd"),
		Status:      c.Query("status"),
	}
	invoices, err := h.billing.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *BillingHandler) Get(c *gin.Context) {
	invoice, err := h.billing.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BillingHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.billing.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *BillingHandler) Delete(c *gin.Context) {
	if err := h.billing.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

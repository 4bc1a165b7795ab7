package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/service"
)

type CustomerHandler struct {
	customers *service.CustomerService
}

func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	FarmerID     string `json:"farmerId" binding:"required"`
	FarmerName   string `json:"farmerName" binding:"required"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobileNumber"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer := models.CustomerProfile{
		FarmerID:     req.FarmerID,
		FarmerName:   req.FarmerName,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
	}
	if err := h.customers.Add(c.Request.Context(), &customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer := models.CustomerProfile{
		ID:           c.Param("id"),
		FarmerID:     req.FarmerID,
		FarmerName:   req.FarmerName,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
	}
	if err := h.customers.Update(c.Request.Context(), &customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

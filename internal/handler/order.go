package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, nil, "")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrOrderNotFound, "order not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.orderService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, service.ErrOrderNotFound, "order not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.orderService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrOrderNotFound, "order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted", "order": resp})
}

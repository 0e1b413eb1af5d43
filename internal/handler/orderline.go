package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/service"
)

type OrderLineHandler struct {
	lineService *service.OrderLineService
}

func NewOrderLineHandler(lineService *service.OrderLineService) *OrderLineHandler {
	return &OrderLineHandler{lineService: lineService}
}

func (h *OrderLineHandler) Create(c *gin.Context) {
	var req dto.CreateOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.lineService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, nil, "")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *OrderLineHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.lineService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrOrderLineNotFound, "order line not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OrderLineHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.OrderLinePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.lineService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, service.ErrOrderLineNotFound, "order line not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OrderLineHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.lineService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrOrderLineNotFound, "order line not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order line deleted", "order_line": resp})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, nil, "")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrCategoryNotFound, "category not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.categoryService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, service.ErrCategoryNotFound, "category not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.categoryService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrCategoryNotFound, "category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted", "category": resp})
}

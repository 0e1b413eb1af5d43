package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, nil, "")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrUserNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, service.ErrUserNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.userService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.ErrUserNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted", "user": resp})
}

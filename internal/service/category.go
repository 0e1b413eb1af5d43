package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
	"github.com/esit/ecommerce-api/internal/repository"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.CategoryStatusActive,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, patch dto.CategoryPatch) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

func toCategoryResponse(c *model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

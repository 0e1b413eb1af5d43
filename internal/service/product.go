package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
	"github.com/esit/ecommerce-api/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		SKU:         req.SKU,
		Status:      model.ProductStatusActive,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, patch dto.ProductPatch) (*dto.ProductResponse, error) {
	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Stock:       p.Stock,
		SKU:         p.SKU,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

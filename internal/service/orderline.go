package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
	"github.com/esit/ecommerce-api/internal/repository"
)

var ErrOrderLineNotFound = errors.New("order line not found")

type OrderLineService struct {
	lineRepo repository.OrderLineRepository
}

func NewOrderLineService(lineRepo repository.OrderLineRepository) *OrderLineService {
	return &OrderLineService{lineRepo: lineRepo}
}

func (s *OrderLineService) Create(ctx context.Context, req dto.CreateOrderLineRequest) (*dto.OrderLineResponse, error) {
	line := &model.OrderLine{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Subtotal:  req.Subtotal,
	}
	if err := s.lineRepo.Create(ctx, line); err != nil {
		return nil, fmt.Errorf("create order line: %w", err)
	}
	resp := toOrderLineResponse(line)
	return &resp, nil
}

func (s *OrderLineService) GetByID(ctx context.Context, id int64) (*dto.OrderLineResponse, error) {
	line, err := s.lineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order line: %w", err)
	}
	if line == nil {
		return nil, ErrOrderLineNotFound
	}
	resp := toOrderLineResponse(line)
	return &resp, nil
}

func (s *OrderLineService) Update(ctx context.Context, id int64, patch dto.OrderLinePatch) (*dto.OrderLineResponse, error) {
	line, err := s.lineRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update order line: %w", err)
	}
	if line == nil {
		return nil, ErrOrderLineNotFound
	}
	resp := toOrderLineResponse(line)
	return &resp, nil
}

func (s *OrderLineService) Delete(ctx context.Context, id int64) (*dto.OrderLineResponse, error) {
	line, err := s.lineRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete order line: %w", err)
	}
	if line == nil {
		return nil, ErrOrderLineNotFound
	}
	resp := toOrderLineResponse(line)
	return &resp, nil
}

func toOrderLineResponse(l *model.OrderLine) dto.OrderLineResponse {
	return dto.OrderLineResponse{
		ID:        l.ID,
		OrderID:   l.OrderID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
		Subtotal:  l.Subtotal,
	}
}

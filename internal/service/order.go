package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/events"
	"github.com/esit/ecommerce-api/internal/model"
	"github.com/esit/ecommerce-api/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	orderRepo repository.OrderRepository
	publisher *events.Publisher
	log       *slog.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, publisher *events.Publisher, log *slog.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, publisher: publisher, log: log}
}

func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order := &model.Order{
		UserID:        req.UserID,
		Status:        model.OrderStatusPending,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, model.OrderEvent{
		OrderID: order.ID, UserID: order.UserID,
		Status: order.Status, Kind: events.KindOrderCreated,
	})

	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) Update(ctx context.Context, id int64, patch dto.OrderPatch) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if patch.Status != nil {
		s.publish(ctx, model.OrderEvent{
			OrderID: order.ID, UserID: order.UserID,
			Status: order.Status, Kind: events.KindOrderStatusChanged,
		})
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	s.publish(ctx, model.OrderEvent{
		OrderID: order.ID, UserID: order.UserID,
		Status: order.Status, Kind: events.KindOrderDeleted,
	})

	resp := toOrderResponse(order)
	return &resp, nil
}

// publish is best-effort; a broker outage must not fail the CRUD call.
func (s *OrderService) publish(ctx context.Context, ev model.OrderEvent) {
	if err := s.publisher.PublishOrderEvent(ctx, ev); err != nil && s.log != nil {
		s.log.Error("publish order event", "order_id", ev.OrderID, "kind", ev.Kind, "error", err)
	}
}

func toOrderResponse(o *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		OrderDate:     o.OrderDate,
		Status:        o.Status,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

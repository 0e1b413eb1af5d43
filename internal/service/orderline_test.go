package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
)

type mockOrderLineRepo struct {
	lines  map[int64]*model.OrderLine
	nextID int64
}

func newMockOrderLineRepo() *mockOrderLineRepo {
	return &mockOrderLineRepo{lines: make(map[int64]*model.OrderLine)}
}

func (m *mockOrderLineRepo) Create(_ context.Context, line *model.OrderLine) error {
	m.nextID++
	line.ID = m.nextID
	m.lines[line.ID] = line
	return nil
}

func (m *mockOrderLineRepo) GetByID(_ context.Context, id int64) (*model.OrderLine, error) {
	return m.lines[id], nil
}

func (m *mockOrderLineRepo) Update(_ context.Context, id int64, patch dto.OrderLinePatch) (*model.OrderLine, error) {
	line := m.lines[id]
	if line == nil {
		return nil, nil
	}
	if patch.Quantity != nil {
		line.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		line.UnitPrice = *patch.UnitPrice
	}
	if patch.Subtotal != nil {
		line.Subtotal = *patch.Subtotal
	}
	return line, nil
}

func (m *mockOrderLineRepo) Delete(_ context.Context, id int64) (*model.OrderLine, error) {
	line := m.lines[id]
	if line == nil {
		return nil, nil
	}
	delete(m.lines, id)
	return line, nil
}

func TestOrderLineService_Create_StoresSubtotalAsGiven(t *testing.T) {
	svc := NewOrderLineService(newMockOrderLineRepo())

	// Subtotal is taken verbatim, not recomputed from quantity × unit price.
	resp, err := svc.Create(context.Background(), dto.CreateOrderLineRequest{
		OrderID: 1, ProductID: 5, Quantity: 2,
		UnitPrice: decimal.NewFromFloat(49.99),
		Subtotal:  decimal.NewFromFloat(99.98),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.OrderID)
	assert.Equal(t, int64(5), resp.ProductID)
	assert.True(t, decimal.NewFromFloat(99.98).Equal(resp.Subtotal))
}

func TestOrderLineService_GetByID_NotFound(t *testing.T) {
	svc := NewOrderLineService(newMockOrderLineRepo())
	_, err := svc.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrOrderLineNotFound)
}

func TestOrderLineService_Delete(t *testing.T) {
	repo := newMockOrderLineRepo()
	svc := NewOrderLineService(repo)

	created, err := svc.Create(context.Background(), dto.CreateOrderLineRequest{
		OrderID: 1, ProductID: 2, Quantity: 1,
		UnitPrice: decimal.NewFromFloat(5), Subtotal: decimal.NewFromFloat(5),
	})
	require.NoError(t, err)

	resp, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Empty(t, repo.lines)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
)

type mockProductRepo struct {
	products map[int64]*model.Product
	nextID   int64
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[int64]*model.Product)}
}

func (m *mockProductRepo) Create(_ context.Context, p *model.Product) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (*model.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) Update(_ context.Context, id int64, patch dto.ProductPatch) (*model.Product, error) {
	p := m.products[id]
	if p == nil {
		return nil, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.SKU != nil {
		p.SKU = patch.SKU
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id int64) (*model.Product, error) {
	p := m.products[id]
	if p == nil {
		return nil, nil
	}
	delete(m.products, id)
	return p, nil
}

func TestProductService_Create_Defaults(t *testing.T) {
	svc := NewProductService(newMockProductRepo())

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Keyboard", Description: "Mechanical", Price: decimal.NewFromFloat(49.99), CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ProductStatusActive, resp.Status)
	assert.Equal(t, 0, resp.Stock)
	assert.Nil(t, resp.SKU)
}

func TestProductService_Update_SingleField(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo)

	stock := 5
	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Keyboard", Description: "Mechanical", Price: decimal.NewFromFloat(49.99),
		CategoryID: 1, Stock: &stock,
	})
	require.NoError(t, err)

	newStock := 3
	resp, err := svc.Update(context.Background(), created.ID, dto.ProductPatch{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Stock)
	assert.Equal(t, "Keyboard", resp.Name)
	assert.True(t, decimal.NewFromFloat(49.99).Equal(resp.Price))
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo())
	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo())
	_, err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

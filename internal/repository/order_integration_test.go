package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
)

func TestOrderRepo_CreateThenGet(t *testing.T) {
	cleanupTables(t)

	repo := NewOrderRepository(testPool)
	ctx := context.Background()

	user := mustCreateUser(t, "ana@x.com")

	order := &model.Order{
		UserID: user.ID, Status: model.OrderStatusPending,
		Total: decimal.NewFromFloat(99.99),
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.NotZero(t, order.ID)
	assert.False(t, order.OrderDate.IsZero())

	found, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, model.OrderStatusPending, found.Status)
	assert.True(t, decimal.NewFromFloat(99.99).Equal(found.Total))
	assert.Nil(t, found.PaymentMethod)
}

func TestOrderRepo_CreateWithDanglingUser(t *testing.T) {
	cleanupTables(t)

	order := &model.Order{
		UserID: 9999, Status: model.OrderStatusPending,
		Total: decimal.NewFromFloat(10),
	}
	err := NewOrderRepository(testPool).Create(context.Background(), order)
	require.Error(t, err)
	var integrity *IntegrityError
	assert.ErrorAs(t, err, &integrity)
}

func TestOrderRepo_StatusPatch(t *testing.T) {
	cleanupTables(t)

	repo := NewOrderRepository(testPool)
	ctx := context.Background()

	user := mustCreateUser(t, "ana@x.com")
	order := &model.Order{
		UserID: user.ID, Status: model.OrderStatusPending,
		Total: decimal.NewFromFloat(25),
	}
	require.NoError(t, repo.Create(ctx, order))

	status := model.OrderStatusShipped
	after, err := repo.Update(ctx, order.ID, dto.OrderPatch{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, model.OrderStatusShipped, after.Status)
	assert.True(t, decimal.NewFromFloat(25).Equal(after.Total))
	assert.False(t, after.UpdatedAt.Before(order.UpdatedAt))
}

// The documented flow: create an order, then its line in a separate call, and
// read the line back with both references intact.
func TestOrderLineRepo_Scenario(t *testing.T) {
	cleanupTables(t)

	ctx := context.Background()
	user := mustCreateUser(t, "ana@x.com")
	category := mustCreateCategory(t, "peripherals")

	product := &model.Product{
		Name: "Keyboard", Description: "Mechanical",
		Price: decimal.NewFromFloat(49.99), CategoryID: category.ID,
		Stock: 10, Status: model.ProductStatusActive,
	}
	require.NoError(t, NewProductRepository(testPool).Create(ctx, product))

	order := &model.Order{
		UserID: user.ID, Status: model.OrderStatusPending,
		Total: decimal.NewFromFloat(99.99),
	}
	require.NoError(t, NewOrderRepository(testPool).Create(ctx, order))

	lineRepo := NewOrderLineRepository(testPool)
	line := &model.OrderLine{
		OrderID: order.ID, ProductID: product.ID, Quantity: 2,
		UnitPrice: decimal.NewFromFloat(49.99),
		Subtotal:  decimal.NewFromFloat(99.98),
	}
	require.NoError(t, lineRepo.Create(ctx, line))
	assert.NotZero(t, line.ID)

	found, err := lineRepo.GetByID(ctx, line.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, order.ID, found.OrderID)
	assert.Equal(t, product.ID, found.ProductID)
	assert.Equal(t, 2, found.Quantity)
	assert.True(t, decimal.NewFromFloat(99.98).Equal(found.Subtotal))
}

func TestOrderLineRepo_DanglingReferences(t *testing.T) {
	cleanupTables(t)

	line := &model.OrderLine{
		OrderID: 9999, ProductID: 9999, Quantity: 1,
		UnitPrice: decimal.NewFromFloat(1), Subtotal: decimal.NewFromFloat(1),
	}
	err := NewOrderLineRepository(testPool).Create(context.Background(), line)
	require.Error(t, err)
	var integrity *IntegrityError
	assert.ErrorAs(t, err, &integrity)
	assert.Equal(t, 0, countRows(t, "order_lines"))
}

func TestOrderRepo_DeleteWithLinesFails(t *testing.T) {
	cleanupTables(t)

	ctx := context.Background()
	user := mustCreateUser(t, "ana@x.com")
	category := mustCreateCategory(t, "peripherals")

	product := &model.Product{
		Name: "Keyboard", Description: "Mechanical",
		Price: decimal.NewFromFloat(49.99), CategoryID: category.ID,
		Status: model.ProductStatusActive,
	}
	require.NoError(t, NewProductRepository(testPool).Create(ctx, product))

	order := &model.Order{
		UserID: user.ID, Status: model.OrderStatusPending,
		Total: decimal.NewFromFloat(49.99),
	}
	require.NoError(t, NewOrderRepository(testPool).Create(ctx, order))

	line := &model.OrderLine{
		OrderID: order.ID, ProductID: product.ID, Quantity: 1,
		UnitPrice: decimal.NewFromFloat(49.99), Subtotal: decimal.NewFromFloat(49.99),
	}
	require.NoError(t, NewOrderLineRepository(testPool).Create(ctx, line))

	_, err := NewOrderRepository(testPool).Delete(ctx, order.ID)
	require.Error(t, err)
	var integrity *IntegrityError
	assert.ErrorAs(t, err, &integrity)
}

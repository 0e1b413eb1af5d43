package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esit/ecommerce-api/internal/model"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_URL not set, skipping integration tests")
		os.Exit(0)
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
		os.Exit(1)
	}
	defer testPool.Close()

	code := m.Run()
	os.Exit(code)
}

func cleanupTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"order_lines", "orders", "products", "categories", "users"} {
		_, err := testPool.Exec(context.Background(), fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Fatalf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	err := testPool.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
	if err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return n
}

func mustCreateUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{
		Name: "Ana", Email: email, Password: "hashed",
		Address: "Calle 1", Status: model.UserStatusActive,
	}
	if err := NewUserRepository(testPool).Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateCategory(t *testing.T, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, Status: model.CategoryStatusActive}
	if err := NewCategoryRepository(testPool).Create(context.Background(), category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
)

func TestUserService_Create(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "ana@x.com", Password: "secret12", Address: "Calle 1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, resp.Status)
	assert.False(t, resp.CreatedAt.IsZero())

	stored := repo.byEmail["ana@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret12", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret12")))
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(newMockUserRepo())
	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Update_PatchesOnlyGivenFields(t *testing.T) {
	repo := newMockUserRepo()
	user := seedUser(repo, "ana@x.com", "secret12")
	svc := NewUserService(repo)

	name := "Ana Maria"
	resp, err := svc.Update(context.Background(), user.ID, dto.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", resp.Name)
	assert.Equal(t, "ana@x.com", resp.Email)
	assert.Equal(t, "Calle 1", resp.Address)
}

func TestUserService_Update_HashesNewPassword(t *testing.T) {
	repo := newMockUserRepo()
	user := seedUser(repo, "ana@x.com", "secret12")
	svc := NewUserService(repo)

	newPass := "changed-pass"
	_, err := svc.Update(context.Background(), user.ID, dto.UserPatch{Password: &newPass})
	require.NoError(t, err)

	stored := repo.byID[user.ID]
	assert.NotEqual(t, "changed-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("changed-pass")))
}

func TestUserService_Delete(t *testing.T) {
	repo := newMockUserRepo()
	user := seedUser(repo, "ana@x.com", "secret12")
	svc := NewUserService(repo)

	resp, err := svc.Delete(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)

	_, err = svc.Delete(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

func newTestUserService(t *testing.T) (*UserService, *mockPublisher) {
	pub := newMockPublisher()
	svc := NewUserService(repository.NewUserRepository(newTestDB(t)), pub).WithHashCost(bcrypt.MinCost)
	return svc, pub
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc, pub := newTestUserService(t)
	ctx := context.Background()

	req := entity.UserRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret123"}
	created, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))

	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")

	assert.Equal(t, []string{"user-created-1"}, pub.keys())
}

func TestUserService_UpdateReplacesAllFields(t *testing.T) {
	svc, pub := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, entity.UserRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, created.ID, entity.UserRequest{FirstName: "Bob", LastName: "Ray", Email: "bob@example.com", Password: "another1"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "Ray", got.LastName)
	assert.Equal(t, "bob@example.com", got.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("another1")))

	_, err = svc.UpdateUser(ctx, 999, entity.UserRequest{FirstName: "X", LastName: "Y", Email: "x@example.com", Password: "another1"})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	assert.Equal(t, []string{"user-created-1", "user-updated-1"}, pub.keys())
}

func TestUserService_DeleteTwice(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, entity.UserRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret123"})
	require.NoError(t, err)

	deleted, err := svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, pub := newTestUserService(t)
	ctx := context.Background()

	req := entity.UserRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, entity.ErrDuplicateEmail)
	assert.Len(t, pub.keys(), 1)
}

func TestUserService_PublishFailureIsNotFatal(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	svc := NewUserService(repository.NewUserRepository(newTestDB(t)), pub).WithHashCost(bcrypt.MinCost)

	created, err := svc.CreateUser(context.Background(), entity.UserRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	pub.AssertNumberOfCalls(t, "Publish", 1)
}

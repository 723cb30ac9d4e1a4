package usersvc_test

import (
	"context"
	"testing"

	usermemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/user/memory"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/services/usersvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() (*usersvc.UserService, *usermemory.MemoryUserRepository) {
	repo := usermemory.NewMemoryUserRepository()
	return usersvc.MustNewUserService(usersvc.WithRepository(repo)), repo
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateUser(context.Background(), usersvc.CreateUserModel{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NotZero(t, created.ID)
	assert.NotEqual(t, "s3cret", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")))
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetUser(context.Background(), 404)
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListUsers_OrderedByID(t *testing.T) {
	svc, _ := newService()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := svc.CreateUser(context.Background(), usersvc.CreateUserModel{
			Name:     name,
			Email:    name + "@example.com",
			Password: "pw",
		})
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Carol", users[2].Name)
	assert.Less(t, users[0].ID, users[1].ID)
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateUser(context.Background(), usersvc.CreateUserModel{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "old",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(context.Background(), created.ID, usersvc.CreateUserModel{
		Name:     "Alice Cooper",
		Email:    "alice@example.com",
		Password: "new",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("old")))
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateUser(context.Background(), usersvc.CreateUserModel{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), created.ID))

	_, err = svc.GetUser(context.Background(), created.ID)
	require.ErrorIs(t, err, user.ErrUserNotFound)

	err = svc.DeleteUser(context.Background(), created.ID)
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

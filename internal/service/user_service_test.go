package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elitedriving/institute-api/internal/models"
	"github.com/elitedriving/institute-api/internal/store"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
)

type mockUserStore struct {
	users map[string]models.User // keyed by username
}

func (m *mockUserStore) CreateUser(ctx context.Context, in store.NewUser) (models.User, error) {
	user := models.User{ID: "user-1", Username: in.Username, Password: in.Password}
	m.users[in.Username] = user
	return user, nil
}

func (m *mockUserStore) GetUser(ctx context.Context, id string) (models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (m *mockUserStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func TestUserServiceCreateHashesPassword(t *testing.T) {
	st := &mockUserStore{users: map[string]models.User{}}
	svc := NewUserService(st, nil, nil)

	user, err := svc.Create(context.Background(), CreateUserRequest{Username: "frontdesk", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", user.Username)

	stored := st.users["frontdesk"]
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
}

func TestUserServiceCreateDuplicateUsername(t *testing.T) {
	st := &mockUserStore{users: map[string]models.User{
		"frontdesk": {ID: "user-1", Username: "frontdesk"},
	}}
	svc := NewUserService(st, nil, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{Username: "frontdesk", Password: "s3cret-pass"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "Username already taken", appErr.Message)
}

func TestUserServiceCreateValidation(t *testing.T) {
	svc := NewUserService(&mockUserStore{users: map[string]models.User{}}, nil, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{Username: "frontdesk", Password: "short"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Details, "password: min=6")
}

func TestUserServiceAuthenticate(t *testing.T) {
	st := &mockUserStore{users: map[string]models.User{}}
	svc := NewUserService(st, nil, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{Username: "frontdesk", Password: "s3cret-pass"})
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "frontdesk", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", user.Username)

	_, err = svc.Authenticate(context.Background(), "frontdesk", "wrong-pass")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid username or password", appErr.Message)

	// Unknown usernames produce the same response as a bad password.
	_, err = svc.Authenticate(context.Background(), "nobody", "s3cret-pass")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid username or password", appErr.Message)
}

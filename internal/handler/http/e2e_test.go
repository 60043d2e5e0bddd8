// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const e2eSignKey = "e2e-test-sign-key"

// memoryUserRepository is an in-memory store.UserRepository used to run the
// whole HTTP stack without a database.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{nextID: 1, users: make(map[int64]models.User)}
}

func (m *memoryUserRepository) GetUsers(_ context.Context, page, limit int64) ([]models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	offset := (page - 1) * limit
	if offset < 0 || offset >= int64(len(all)) {
		return []models.User{}, int64(len(m.users)), nil
	}
	end := offset + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}

	return all[offset:end], int64(len(m.users)), nil
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.NewUser) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	created := models.User{ID: m.nextID, Email: user.Email, Name: user.Name, Password: user.Password}
	m.users[created.ID] = created
	m.nextID++
	return created, nil
}

func (m *memoryUserRepository) UpdateUser(_ context.Context, userID int64, user models.NewUser) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return models.User{}, store.ErrNoUserWasFound
	}

	updated := models.User{ID: userID, Email: user.Email, Name: user.Name, Password: user.Password}
	m.users[userID] = updated
	return updated, nil
}

func (m *memoryUserRepository) DeleteUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// zero affected rows is still a successful delete
	delete(m.users, userID)
	return nil
}

func (m *memoryUserRepository) FindUserByCredentials(_ context.Context, email, password string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

// newE2EServer wires the real service and handler stack on top of the
// in-memory repository and exposes it via httptest.Server.
func newE2EServer(t *testing.T) (*httptest.Server, *memoryUserRepository) {
	t.Helper()

	repo := newMemoryUserRepository()
	log := logger.Nop()

	services := service.NewServices(&store.Storages{UserRepository: repo}, config.App{
		TokenSignKey:  e2eSignKey,
		TokenDuration: time.Minute,
	}, log)

	srv := httptest.NewServer(NewHandler(services, log).Init())
	t.Cleanup(srv.Close)

	return srv, repo
}

func seedUser(t *testing.T, repo *memoryUserRepository, email, name, password string) models.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), models.NewUser{Email: email, Name: name, Password: password})
	require.NoError(t, err)
	return u
}

func TestE2E_LoginThenListUsers(t *testing.T) {
	srv, repo := newE2EServer(t)
	seedUser(t, repo, "john@example.com", "John", "secret")

	client := resty.New().SetBaseURL(srv.URL)

	var loginResp models.Response
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginUser{Email: "john@example.com", Password: "secret"}).
		SetResult(&loginResp).
		Post("/api/v1/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	tokenString, ok := loginResp.Data.(string)
	require.True(t, ok)
	require.NotEmpty(t, tokenString)

	// the issued token authorizes a protected call within its lifetime
	var listResp models.ResponseWithPagination
	resp, err = client.R().
		SetHeader("Authorization", "Bearer "+tokenString).
		SetResult(&listResp).
		Get("/api/v1/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "get users", listResp.Message)
	assert.Equal(t, int64(1), listResp.Meta.TotalData)
}

func TestE2E_ProtectedRouteWithoutToken(t *testing.T) {
	srv, _ := newE2EServer(t)

	var errResp models.Response
	resp, err := resty.New().SetBaseURL(srv.URL).R().
		SetError(&errResp).
		Get("/api/v1/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "no token provided", errResp.Message)
}

func TestE2E_ExpiredToken(t *testing.T) {
	srv, repo := newE2EServer(t)
	user := seedUser(t, repo, "john@example.com", "John", "secret")

	expired, err := utils.GenerateJWTToken(user.ID, -time.Minute, e2eSignKey)
	require.NoError(t, err)

	var errResp models.Response
	resp, err := resty.New().SetBaseURL(srv.URL).R().
		SetHeader("Authorization", "Bearer "+expired.SignedString).
		SetError(&errResp).
		Get("/api/v1/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "expired token", errResp.Message)
}

func TestE2E_TokenSignedWithDifferentSecret(t *testing.T) {
	srv, repo := newE2EServer(t)
	user := seedUser(t, repo, "john@example.com", "John", "secret")

	foreign, err := utils.GenerateJWTToken(user.ID, time.Minute, "not-the-server-secret")
	require.NoError(t, err)

	var errResp models.Response
	resp, err := resty.New().SetBaseURL(srv.URL).R().
		SetHeader("Authorization", "Bearer "+foreign.SignedString).
		SetError(&errResp).
		Get("/api/v1/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "invalid token", errResp.Message)
}

func TestE2E_FullCRUDRoundTrip(t *testing.T) {
	srv, repo := newE2EServer(t)
	admin := seedUser(t, repo, "admin@example.com", "Admin", "admin-pass")

	client := resty.New().SetBaseURL(srv.URL)

	token, err := utils.GenerateJWTToken(admin.ID, time.Minute, e2eSignKey)
	require.NoError(t, err)
	auth := "Bearer " + token.SignedString

	// create
	var createResp models.Response
	resp, err := client.R().
		SetHeader("Authorization", auth).
		SetBody(models.NewUser{Email: "jane@example.com", Name: "Jane", Password: "pw"}).
		SetResult(&createResp).
		Post("/api/v1/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, "create user successfuly", createResp.Message)

	// update
	var updateResp models.Response
	resp, err = client.R().
		SetHeader("Authorization", auth).
		SetBody(models.NewUser{Email: "jane@example.com", Name: "Jane Updated", Password: "pw"}).
		SetResult(&updateResp).
		Patch("/api/v1/users/2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "update user successfully", updateResp.Message)

	// delete
	var deleteResp models.Response
	resp, err = client.R().
		SetHeader("Authorization", auth).
		SetResult(&deleteResp).
		Delete("/api/v1/users/2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "delete user successfully", deleteResp.Message)

	// deleting the same id again still reports success
	resp, err = client.R().
		SetHeader("Authorization", auth).
		SetResult(&deleteResp).
		Delete("/api/v1/users/2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{
		create: func(ctx context.Context, name, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Name: name, Email: email, Tasks: []*domain.Task{}}, nil
		},
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodPost, "/users", `{"name":"Ana","email":"ana@x.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var got domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Ana", got.Name)
	assert.NotNil(t, got.Tasks)
	assert.Empty(t, got.Tasks)
}

func TestCreateUserValidationError(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{
		create: func(ctx context.Context, name, email string) (*domain.User, error) {
			return nil, domain.Invalidf("email is required")
		},
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodPost, "/users", `{"name":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{
		create: func(ctx context.Context, name, email string) (*domain.User, error) {
			return nil, domain.Conflictf("email already in use")
		},
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodPost, "/users", `{"name":"Ana","email":"ana@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
}

func TestGetUserNotFound(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{
		getByID: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodGet, "/users/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserInvalidID(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserPassesPatchThrough(t *testing.T) {
	var gotPatch domain.UserPatch
	h := &Handler{Users: &fakeUserStore{
		update: func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
			gotPatch = patch
			return &domain.User{ID: id, Name: "Bea", Email: "old@x.com", Tasks: []*domain.Task{}}, nil
		},
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodPut, "/users/7", `{"name":"Bea"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotPatch.Name)
	assert.Equal(t, "Bea", *gotPatch.Name)
	assert.Nil(t, gotPatch.Email)
}

func TestDeleteUserWithTasksConflicts(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{
		delete: func(ctx context.Context, id int64) error {
			return domain.Conflictf("user still owns tasks")
		},
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "still owns tasks")
}

func TestDeleteUser(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{
		delete: func(ctx context.Context, id int64) error { return nil },
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user deleted")
}

func TestListUsersEmptyIsArray(t *testing.T) {
	h := &Handler{Users: &fakeUserStore{
		listAll: func(ctx context.Context) ([]*domain.User, error) { return nil, nil },
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

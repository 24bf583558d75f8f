package handlers

import (
	"context"
	"net/http/httptest"
	"strings"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type fakeUserStore struct {
	listAll func(ctx context.Context) ([]*domain.User, error)
	getByID func(ctx context.Context, id int64) (*domain.User, error)
	create  func(ctx context.Context, name, email string) (*domain.User, error)
	update  func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	delete  func(ctx context.Context, id int64) error
}

func (f *fakeUserStore) ListAll(ctx context.Context) ([]*domain.User, error) {
	return f.listAll(ctx)
}
func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.getByID(ctx, id)
}
func (f *fakeUserStore) Create(ctx context.Context, name, email string) (*domain.User, error) {
	return f.create(ctx, name, email)
}
func (f *fakeUserStore) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	return f.update(ctx, id, patch)
}
func (f *fakeUserStore) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

type fakeTaskStore struct {
	list    func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	getByID func(ctx context.Context, id int64) (*domain.Task, error)
	create  func(ctx context.Context, title, description string, ownerID int64) (*domain.Task, error)
	update  func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	delete  func(ctx context.Context, id int64) error
}

func (f *fakeTaskStore) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	return f.list(ctx, filter)
}
func (f *fakeTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return f.getByID(ctx, id)
}
func (f *fakeTaskStore) Create(ctx context.Context, title, description string, ownerID int64) (*domain.Task, error) {
	return f.create(ctx, title, description, ownerID)
}
func (f *fakeTaskStore) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	return f.update(ctx, id, patch)
}
func (f *fakeTaskStore) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

type fakeStatsStore struct {
	summary func(ctx context.Context) (domain.Summary, error)
}

func (f *fakeStatsStore) Summary(ctx context.Context) (domain.Summary, error) {
	return f.summary(ctx)
}

// newTestRouter wires the handler onto the same paths the service
// registers, minus the DB-backed probes.
func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/", Discovery)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.POST("/users", h.CreateUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/tasks", h.ListTasks)
	r.GET("/tasks/:id", h.GetTask)
	r.POST("/tasks", h.CreateTask)
	r.PUT("/tasks/:id", h.UpdateTask)
	r.DELETE("/tasks/:id", h.DeleteTask)
	r.GET("/stats", h.GetStats)
	r.NoRoute(NotFound)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

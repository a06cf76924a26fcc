package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"snipr-be/internal/entities"
	"snipr-be/internal/models"
	"snipr-be/internal/service"
)

type fakeUserService struct {
	listSkip   int
	listLimit  int
	getUser    *entities.User
	getErr     error
	updateUser *entities.User
	updateErr  error
	deleteErr  error
}

func (f *fakeUserService) List(skip, limit int) ([]*entities.User, error) {
	f.listSkip, f.listLimit = skip, limit
	return []*entities.User{}, nil
}

func (f *fakeUserService) Get(string) (*entities.User, error) {
	return f.getUser, f.getErr
}

func (f *fakeUserService) Update(string, *models.UpdateUserRequest) (*entities.User, error) {
	return f.updateUser, f.updateErr
}

func (f *fakeUserService) Delete(string) error {
	return f.deleteErr
}

func newUserRouter(users *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := NewUserController(users)

	router := gin.New()
	router.GET("/users", uc.List)
	router.GET("/users/:id", uc.Get)
	router.PUT("/users/:id", uc.Update)
	router.DELETE("/users/:id", uc.Delete)
	return router
}

func TestUserList_PaginationDefaults(t *testing.T) {
	users := &fakeUserService{}
	router := newUserRouter(users)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if users.listSkip != 0 || users.listLimit != 10 {
		t.Errorf("expected defaults skip=0 limit=10, got skip=%d limit=%d", users.listSkip, users.listLimit)
	}
}

func TestUserList_PaginationFromQuery(t *testing.T) {
	users := &fakeUserService{}
	router := newUserRouter(users)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users?skip=20&limit=5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if users.listSkip != 20 || users.listLimit != 5 {
		t.Errorf("expected skip=20 limit=5, got skip=%d limit=%d", users.listSkip, users.listLimit)
	}
}

func TestUserGet_NotFoundStatus(t *testing.T) {
	router := newUserRouter(&fakeUserService{getErr: service.ErrUserNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUserUpdate_Accepted(t *testing.T) {
	router := newUserRouter(&fakeUserService{updateUser: &entities.User{ID: "u-1", Username: "dana"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/u-1", strings.NewReader(`{"username": "dana"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Errorf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUserUpdate_StoreConflict(t *testing.T) {
	router := newUserRouter(&fakeUserService{updateErr: service.ErrConflict})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/u-1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestUserDelete_NoContent(t *testing.T) {
	router := newUserRouter(&fakeUserService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/u-1", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected an empty body, got %q", w.Body.String())
	}
}

func TestUserDelete_StoreConflict(t *testing.T) {
	router := newUserRouter(&fakeUserService{deleteErr: service.ErrConflict})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/u-1", nil))

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

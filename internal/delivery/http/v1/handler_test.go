package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skills-api/config"
	v1 "skills-api/internal/delivery/http/v1"
	"skills-api/internal/domain"
	"skills-api/internal/usecase"
	"skills-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockThemeUsecase struct {
	mock.Mock
}

func (m *MockThemeUsecase) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Theme), args.Error(1)
}

func (m *MockThemeUsecase) GetTheme(ctx context.Context, id int64) (*domain.Theme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

func (m *MockThemeUsecase) CreateTheme(ctx context.Context, in domain.ThemeInput) (*domain.Theme, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

func (m *MockThemeUsecase) UpdateTheme(ctx context.Context, id int64, in domain.ThemeInput) (*domain.Theme, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

func (m *MockThemeUsecase) DeleteTheme(ctx context.Context, id int64) (*domain.Theme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

type MockSkillUsecase struct {
	mock.Mock
}

func (m *MockSkillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillUsecase) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillUsecase) CreateSkill(ctx context.Context, in domain.CreateSkillInput) (*domain.Skill, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillUsecase) UpdateSkill(ctx context.Context, id int64, patch domain.SkillPatch) (*domain.Skill, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillUsecase) DeleteSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func dbHealth(err error) domain.HealthUsecase {
	return usecase.NewHealthUsecase(usecase.HealthCheck{
		Name:     "database",
		Required: true,
		Ping:     func(context.Context) error { return err },
	})
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(themeUC *MockThemeUsecase, skillUC *MockSkillUsecase, health domain.HealthUsecase) *gin.Engine {
	return v1.NewRouter(v1.RouterDeps{
		ThemeUC: themeUC,
		SkillUC: skillUC,
		Health:  health,
		Config: &config.Config{
			AllowedOrigins: []string{"http://localhost:5500"},
		},
	})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func ptr[T any](v T) *T { return &v }

func TestThemeHandlers(t *testing.T) {
	t.Run("list returns a bare array", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("ListThemes", mock.Anything).Return([]domain.Theme{{ID: 1, Name: "Frontend"}, {ID: 2, Name: "Backend"}}, nil)

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodGet, "/themes", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Frontend"},{"id":2,"name":"Backend"}]`, w.Body.String())
	})

	t.Run("empty list renders []", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("ListThemes", mock.Anything).Return([]domain.Theme{}, nil)

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodGet, "/themes", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("get unknown id", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("GetTheme", mock.Anything, int64(99)).Return(nil, apperror.NotFound("Theme not found"))

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodGet, "/themes/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Theme not found"}`, w.Body.String())
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodGet, "/themes/abc", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Theme not found"}`, w.Body.String())
		themeUC.AssertNotCalled(t, "GetTheme", mock.Anything, mock.Anything)
	})

	t.Run("create wraps the row", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("CreateTheme", mock.Anything, domain.ThemeInput{Name: ptr("DevOps")}).
			Return(&domain.Theme{ID: 5, Name: "DevOps"}, nil)

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodPost, "/themes", `{"name":"DevOps"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"Theme created successfully","data":{"id":5,"name":"DevOps"}}`, w.Body.String())
	})

	t.Run("create with empty body reaches the usecase", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("CreateTheme", mock.Anything, domain.ThemeInput{}).
			Return(nil, apperror.BadRequest(`Field "name" is required`))

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodPost, "/themes", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `Field "name" is required`, decode(t, w)["error"])
	})

	t.Run("malformed json", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodPost, "/themes", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, strings.HasPrefix(decode(t, w)["error"].(string), "Invalid request body: "))
		themeUC.AssertNotCalled(t, "CreateTheme", mock.Anything, mock.Anything)
	})

	t.Run("update", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("UpdateTheme", mock.Anything, int64(1), domain.ThemeInput{Name: ptr("Web")}).
			Return(&domain.Theme{ID: 1, Name: "Web"}, nil)

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodPut, "/themes/1", `{"name":"Web"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Theme updated successfully","data":{"id":1,"name":"Web"}}`, w.Body.String())
	})

	t.Run("delete returns the removed row", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("DeleteTheme", mock.Anything, int64(4)).Return(&domain.Theme{ID: 4, Name: "Frameworks"}, nil)

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodDelete, "/themes/4", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Theme deleted successfully","data":{"id":4,"name":"Frameworks"}}`, w.Body.String())
	})

	t.Run("store error message passes through", func(t *testing.T) {
		themeUC := new(MockThemeUsecase)
		themeUC.On("ListThemes", mock.Anything).Return(nil, apperror.Internal(errors.New("connection refused")))

		w := do(newTestRouter(themeUC, new(MockSkillUsecase), nil), http.MethodGet, "/themes", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
	})
}

func TestSkillHandlers(t *testing.T) {
	t.Run("create with level 0", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)
		in := domain.CreateSkillInput{Skill: ptr("Rust"), Level: ptr(0), ThemeID: ptr(int64(1))}
		skillUC.On("CreateSkill", mock.Anything, in).
			Return(&domain.Skill{ID: 7, Skill: "Rust", Level: 0, ThemeID: 1}, nil)

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodPost, "/skills",
			`{"skill":"Rust","level":0,"theme_id":1}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t,
			`{"message":"Skill created successfully","data":{"id":7,"skill":"Rust","level":0,"theme_id":1}}`,
			w.Body.String())
	})

	t.Run("create validation error", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)
		skillUC.On("CreateSkill", mock.Anything, mock.Anything).
			Return(nil, apperror.BadRequest("Level must be between 0 and 100"))

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodPost, "/skills",
			`{"skill":"Rust","level":101,"theme_id":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Level must be between 0 and 100"}`, w.Body.String())
	})

	t.Run("list", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)
		skillUC.On("ListSkills", mock.Anything).Return([]domain.Skill{{ID: 1, Skill: "Go", Level: 80, ThemeID: 2}}, nil)

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodGet, "/skills", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"skill":"Go","level":80,"theme_id":2}]`, w.Body.String())
	})

	t.Run("get", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)
		skillUC.On("GetSkill", mock.Anything, int64(1)).Return(&domain.Skill{ID: 1, Skill: "Go", Level: 80, ThemeID: 2}, nil)

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodGet, "/skills/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"skill":"Go","level":80,"theme_id":2}`, w.Body.String())
	})

	t.Run("partial update passes only supplied fields", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)
		skillUC.On("UpdateSkill", mock.Anything, int64(3), domain.SkillPatch{Level: ptr(0)}).
			Return(&domain.Skill{ID: 3, Skill: "Go", Level: 0, ThemeID: 2}, nil)

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodPut, "/skills/3",
			`{"level":0,"theme_id":9}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"message":"Skill updated successfully","data":{"id":3,"skill":"Go","level":0,"theme_id":2}}`,
			w.Body.String())
		skillUC.AssertExpectations(t)
	})

	t.Run("update unknown id", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)
		skillUC.On("UpdateSkill", mock.Anything, int64(42), mock.Anything).Return(nil, apperror.NotFound("Skill not found"))

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodPut, "/skills/42", `{"skill":"Go"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Skill not found"}`, w.Body.String())
	})

	t.Run("delete malformed id", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodDelete, "/skills/1.5", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Skill not found"}`, w.Body.String())
		skillUC.AssertNotCalled(t, "DeleteSkill", mock.Anything, mock.Anything)
	})

	t.Run("delete", func(t *testing.T) {
		skillUC := new(MockSkillUsecase)
		skillUC.On("DeleteSkill", mock.Anything, int64(3)).Return(&domain.Skill{ID: 3, Skill: "Go", Level: 10, ThemeID: 2}, nil)

		w := do(newTestRouter(new(MockThemeUsecase), skillUC, nil), http.MethodDelete, "/skills/3", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"message":"Skill deleted successfully","data":{"id":3,"skill":"Go","level":10,"theme_id":2}}`,
			w.Body.String())
	})
}

func TestIndexAndHealth(t *testing.T) {
	t.Run("index lists endpoints", func(t *testing.T) {
		w := do(newTestRouter(new(MockThemeUsecase), new(MockSkillUsecase), nil), http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Skills and Themes API ✅", body["message"])
		assert.Contains(t, body, "endpoints")
	})

	t.Run("health up", func(t *testing.T) {
		w := do(newTestRouter(new(MockThemeUsecase), new(MockSkillUsecase), dbHealth(nil)), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","components":{"database":"up"}}`, w.Body.String())
	})

	t.Run("health down", func(t *testing.T) {
		health := dbHealth(errors.New("dial tcp: connection refused"))
		w := do(newTestRouter(new(MockThemeUsecase), new(MockSkillUsecase), health), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"Database unavailable"}`, w.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		w := do(newTestRouter(new(MockThemeUsecase), new(MockSkillUsecase), nil), http.MethodGet, "/nope", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
	})
}

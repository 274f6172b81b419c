package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
)

func TestRequireRole(t *testing.T) {
	tests := map[string]struct {
		userRole       model.Role
		requiredRole   model.Role
		expectedStatus int
	}{
		"user accessing user route": {
			userRole:       model.RoleUser,
			requiredRole:   model.RoleUser,
			expectedStatus: http.StatusOK,
		},
		"admin accessing company route": {
			userRole:       model.RoleAdministrator,
			requiredRole:   model.RoleCompany,
			expectedStatus: http.StatusOK,
		},
		"user accessing company route": {
			userRole:       model.RoleUser,
			requiredRole:   model.RoleCompany,
			expectedStatus: http.StatusForbidden,
		},
		"company accessing admin route": {
			userRole:       model.RoleCompany,
			requiredRole:   model.RoleAdministrator,
			expectedStatus: http.StatusForbidden,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			authorization := NewAuthorization(newTestLogger(), &mockCompanyService{})

			r := gin.New()
			r.Use(ErrorHandler())
			r.Use(signedInAs(&model.User{ID: 1, Role: test.userRole}))
			r.GET("/restricted", authorization.RequireRole(test.requiredRole), ok)

			recorder := httptest.NewRecorder()
			r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/restricted", nil))

			assert.Equal(t, test.expectedStatus, recorder.Code)
		})
	}
}

func TestRequireRole_NotAuthenticated(t *testing.T) {
	authorization := NewAuthorization(newTestLogger(), &mockCompanyService{})

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/restricted", authorization.RequireRole(model.RoleUser), ok)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/restricted", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireVerifiedCompany(t *testing.T) {
	t.Run("verified company passes and is attached", func(t *testing.T) {
		companyService := &mockCompanyService{}
		companyService.
			On("FindByUserID", mock.Anything, uint(1)).
			Return(&model.Company{ID: 7, UserID: 1, VerificationStatus: model.VerificationVerified}, nil)
		authorization := NewAuthorization(newTestLogger(), companyService)

		r := gin.New()
		r.Use(ErrorHandler())
		r.Use(signedInAs(&model.User{ID: 1, Role: model.RoleCompany}))
		r.GET("/events", authorization.RequireVerifiedCompany, func(c *gin.Context) {
			company, ok := GetCompanyFromContext(c)
			assert.True(t, ok)
			assert.Equal(t, uint(7), company.ID)
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("pending company is blocked", func(t *testing.T) {
		companyService := &mockCompanyService{}
		companyService.
			On("FindByUserID", mock.Anything, uint(1)).
			Return(&model.Company{ID: 7, UserID: 1, VerificationStatus: model.VerificationPending}, nil)
		authorization := NewAuthorization(newTestLogger(), companyService)

		r := gin.New()
		r.Use(ErrorHandler())
		r.Use(signedInAs(&model.User{ID: 1, Role: model.RoleCompany}))
		r.GET("/events", authorization.RequireVerifiedCompany, ok)

		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "not verified")
	})

	t.Run("account without a company is blocked", func(t *testing.T) {
		companyService := &mockCompanyService{}
		companyService.
			On("FindByUserID", mock.Anything, uint(1)).
			Return(nil, errdef.NewNotFound("failed to find company for user 1"))
		authorization := NewAuthorization(newTestLogger(), companyService)

		r := gin.New()
		r.Use(ErrorHandler())
		r.Use(signedInAs(&model.User{ID: 1, Role: model.RoleCompany}))
		r.GET("/events", authorization.RequireVerifiedCompany, ok)

		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "no company registered")
	})

	t.Run("plain user role is blocked without a lookup", func(t *testing.T) {
		companyService := &mockCompanyService{}
		authorization := NewAuthorization(newTestLogger(), companyService)

		r := gin.New()
		r.Use(ErrorHandler())
		r.Use(signedInAs(&model.User{ID: 1, Role: model.RoleUser}))
		r.GET("/events", authorization.RequireVerifiedCompany, ok)

		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		companyService.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func signedInAs(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockCompanyService struct {
	mock.Mock
}

func (m *mockCompanyService) FindByUserID(ctx context.Context, userId uint) (*model.Company, error) {
	called := m.Called(ctx, userId)
	company, _ := called.Get(0).(*model.Company)
	return company, called.Error(1)
}

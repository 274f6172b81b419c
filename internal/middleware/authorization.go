package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/internal/handler"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewAuthorization(logger *slog.Logger, companyService companyService) AuthorizationMiddleware {
	return AuthorizationMiddleware{
		logger:         logger,
		companyService: companyService,
	}
}

type companyService interface {
	FindByUserID(ctx context.Context, userID uint) (*model.Company, error)
}

type AuthorizationMiddleware struct {
	logger         *slog.Logger
	companyService companyService
}

// RequireRole gates a route on the role hierarchy admin ⊇ company ⊇ user.
func (m AuthorizationMiddleware) RequireRole(required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := handler.GetUserFromContext(c)
		if err != nil {
			_ = c.Error(errdef.NewUnauthorized("not authenticated"))
			c.Abort()
			return
		}

		if !model.RoleSatisfies(user.Role, required) {
			m.logger.ErrorContext(c.Request.Context(), "User tried to access a role restricted endpoint", "user", user.ID, "role", user.Role, "required", required)
			_ = c.Error(errdef.NewForbidden("%s access denied", required))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireVerifiedCompany resolves the caller's company and only lets verified
// companies through. The company is attached to the context for handlers. The
// verification gate lives here, at the API boundary, not in the event service.
func (m AuthorizationMiddleware) RequireVerifiedCompany(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(errdef.NewUnauthorized("not authenticated"))
		c.Abort()
		return
	}

	if !model.RoleSatisfies(user.Role, model.RoleCompany) {
		_ = c.Error(errdef.NewForbidden("company access denied"))
		c.Abort()
		return
	}

	company, err := m.companyService.FindByUserID(c.Request.Context(), user.ID)
	if err != nil {
		if errdef.IsNotFound(err) {
			_ = c.Error(errdef.NewForbidden("no company registered for this account"))
		} else {
			_ = c.Error(err)
		}
		c.Abort()
		return
	}

	if !company.IsVerified() {
		m.logger.WarnContext(c.Request.Context(), "Unverified company tried to manage events", "user", user.ID, "company", company.ID, "status", company.VerificationStatus)
		_ = c.Error(errdef.NewForbidden("company is not verified"))
		c.Abort()
		return
	}

	c.Set("company", company)
	c.Next()
}

// GetCompanyFromContext returns the company attached by RequireVerifiedCompany.
func GetCompanyFromContext(c *gin.Context) (*model.Company, bool) {
	companyData, exists := c.Get("company")
	if !exists {
		return nil, false
	}
	company, ok := companyData.(*model.Company)
	return company, ok
}

package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/internal/handler"
	"github.com/takimet-io/takimet/internal/util"
	"github.com/takimet-io/takimet/pkg/model"
	"github.com/takimet-io/takimet/pkg/token"
)

func NewHandler(userService userService, tokenService tokenService, hostname string, accessTokenExpirationSeconds, refreshTokenExpirationSeconds, refreshTokenRememberMeExpirationSeconds int) Handler {
	return Handler{
		userService:                             userService,
		tokenService:                            tokenService,
		hostname:                                hostname,
		accessTokenExpirationSeconds:            accessTokenExpirationSeconds,
		refreshTokenExpirationSeconds:           refreshTokenExpirationSeconds,
		refreshTokenRememberMeExpirationSeconds: refreshTokenRememberMeExpirationSeconds,
	}
}

type Handler struct {
	userService                             userService
	tokenService                            tokenService
	hostname                                string
	accessTokenExpirationSeconds            int
	refreshTokenExpirationSeconds           int
	refreshTokenRememberMeExpirationSeconds int
}

type userService interface {
	SignUp(ctx context.Context, firstName, lastName, email, password string, role model.Role) (*model.User, error)
	SignIn(ctx context.Context, email string, password string) (*model.User, error)
	FindById(ctx context.Context, id uint) (*model.User, error)
}

type tokenService interface {
	GetTokens(user *model.User, previousTokenId string, rememberMe bool) (*token.Tokens, error)
	ValidateRefreshToken(ctx context.Context, tokenString string) (*token.RefreshTokenData, error)
	SignOut(userId uint) error
}

type SignUpRequest struct {
	FirstName string     `json:"firstName" binding:"required"`
	LastName  string     `json:"lastName" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,gte=8,lte=128"`
	Role      model.Role `json:"role" binding:"omitempty,oneOf=user company"`
}

// SignUp user
func (h Handler) SignUp(c *gin.Context) {
	// swagger:route POST /users signUp
	//
	// Sign up
	//
	// Sign up as a regular user or as a company account. Company accounts
	// still need to register a company profile and pass moderation before
	// they can publish events.
	//
	// responses:
	//   201: User
	//   400: Error
	//   409: Error
	//   415: Error
	var request SignUpRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	role := request.Role
	if role == "" {
		role = model.RoleUser
	}

	user, err := h.userService.SignUp(c.Request.Context(), request.FirstName, request.LastName, request.Email, request.Password, role)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

type SignInRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// SignIn user
func (h Handler) SignIn(c *gin.Context) {
	// swagger:route POST /tokens signIn
	//
	// Sign in
	//
	// Sign in and get tokens
	//
	// responses:
	//   201: Tokens
	//   400: Error
	//   401: Error
	//   415: Error
	var request SignInRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignIn(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tokens, err := h.tokenService.GetTokens(user, "", request.RememberMe)
	if err != nil {
		_ = c.Error(err)
		return
	}

	util.SetCookies(c, tokens, request.RememberMe, h.hostname, h.accessTokenExpirationSeconds, h.refreshTokenExpirationSeconds, h.refreshTokenRememberMeExpirationSeconds)

	c.JSON(http.StatusCreated, gin.H{"success": true, "tokens": tokens, "user": user})
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshToken user
func (h Handler) RefreshToken(c *gin.Context) {
	// swagger:route POST /refresh refreshToken
	//
	// Refresh tokens
	//
	// responses:
	//   201: Tokens
	//   400: Error
	//   401: Error
	var request RefreshTokenRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	refreshToken, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), request.RefreshToken)
	if err != nil {
		_ = c.Error(errdef.NewUnauthorized("%v", err))
		return
	}

	user, err := h.userService.FindById(c.Request.Context(), refreshToken.UserId)
	if err != nil {
		if errdef.IsNotFound(err) {
			_ = c.Error(errdef.NewUnauthorized("%v", err))
		} else {
			_ = c.Error(err)
		}
		return
	}

	tokens, err := h.tokenService.GetTokens(user, refreshToken.ID.String(), false)
	if err != nil {
		_ = c.Error(err)
		return
	}

	util.SetCookies(c, tokens, false, h.hostname, h.accessTokenExpirationSeconds, h.refreshTokenExpirationSeconds, h.refreshTokenRememberMeExpirationSeconds)

	c.JSON(http.StatusCreated, gin.H{"success": true, "tokens": tokens})
}

// Me user
func (h Handler) Me(c *gin.Context) {
	// swagger:route GET /me me
	//
	// User details
	//
	// responses:
	//   200: User
	//   401: Error
	//   404: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	userWithDetails, err := h.userService.FindById(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": userWithDetails})
}

// SignOut user
func (h Handler) SignOut(c *gin.Context) {
	// swagger:route DELETE /tokens signOut
	//
	// Sign out
	//
	// Sign out and revoke all refresh tokens
	//
	// responses:
	//   200: Success
	//   401: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.tokenService.SignOut(user.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "signed out"})
}

package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/pkg/token"
)

// SetCookies attaches the issued tokens as http-only cookies so browser
// clients can authenticate without storing tokens in script-readable state.
// The refresh token is scoped to the refresh path only.
func SetCookies(c *gin.Context, tokens *token.Tokens, rememberMe bool, hostname string, accessTokenExpirationSeconds, refreshTokenExpirationSeconds, refreshTokenRememberMeExpirationSeconds int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", tokens.AccessToken, accessTokenExpirationSeconds, "/", hostname, true, true)
	if rememberMe {
		c.SetCookie("refreshToken", tokens.RefreshToken, refreshTokenRememberMeExpirationSeconds, "/refresh", hostname, true, true)
		c.SetCookie("rememberMe", "true", refreshTokenRememberMeExpirationSeconds, "/refresh", hostname, true, true)
	} else {
		c.SetCookie("refreshToken", tokens.RefreshToken, refreshTokenExpirationSeconds, "/refresh", hostname, true, true)
	}
}

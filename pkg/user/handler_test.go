package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
	"github.com/takimet-io/takimet/pkg/token"
)

func TestHandler_SignUp(t *testing.T) {
	userService := &mockUserService{}
	user := &model.User{ID: 1, Email: "drin@example.com", Role: model.RoleUser}
	userService.
		On("SignUp", mock.Anything, "Drin", "Berisha", "drin@example.com", "averylongpassword", model.RoleUser).
		Return(user, nil)
	handler := NewHandler(userService, &mockTokenService{}, "localhost", 300, 3600, 86400)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/users", &SignUpRequest{
		FirstName: "Drin",
		LastName:  "Berisha",
		Email:     "drin@example.com",
		Password:  "averylongpassword",
	})

	handler.SignUp(c)

	require.Empty(t, c.Errors.Errors())
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
	userService.AssertExpectations(t)
}

func TestHandler_SignUp_DuplicateEmail(t *testing.T) {
	userService := &mockUserService{}
	userService.
		On("SignUp", mock.Anything, "Drin", "Berisha", "drin@example.com", "averylongpassword", model.RoleCompany).
		Return(nil, errdef.NewDuplicated("user %q already exists", "drin@example.com"))
	handler := NewHandler(userService, &mockTokenService{}, "localhost", 300, 3600, 86400)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/users", &SignUpRequest{
		FirstName: "Drin",
		LastName:  "Berisha",
		Email:     "drin@example.com",
		Password:  "averylongpassword",
		Role:      model.RoleCompany,
	})

	handler.SignUp(c)

	require.Len(t, c.Errors, 1)
	assert.True(t, errdef.IsDuplicated(c.Errors.Last()))
	userService.AssertExpectations(t)
}

func TestHandler_SignIn(t *testing.T) {
	userService := &mockUserService{}
	user := &model.User{ID: 1, Email: "drin@example.com"}
	userService.
		On("SignIn", mock.Anything, "drin@example.com", "averylongpassword").
		Return(user, nil)
	tokenService := &mockTokenService{}
	tokens := &token.Tokens{
		AccessToken:  "accessToken",
		TokenType:    "bearer",
		RefreshToken: "refreshToken",
		ExpiresIn:    300,
	}
	tokenService.
		On("GetTokens", user, "", false).
		Return(tokens, nil)
	handler := NewHandler(userService, tokenService, "localhost", 300, 3600, 86400)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/tokens", &SignInRequest{Email: "drin@example.com", Password: "averylongpassword"})

	handler.SignIn(c)

	require.Empty(t, c.Errors.Errors())
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"accessToken":"accessToken"`)
	userService.AssertExpectations(t)
	tokenService.AssertExpectations(t)
}

func TestHandler_SignIn_WrongPassword(t *testing.T) {
	userService := &mockUserService{}
	userService.
		On("SignIn", mock.Anything, "drin@example.com", "wrong").
		Return(nil, errdef.NewUnauthorized("invalid email and password combination"))
	handler := NewHandler(userService, &mockTokenService{}, "localhost", 300, 3600, 86400)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = newPost(t, "/tokens", &SignInRequest{Email: "drin@example.com", Password: "wrong"})

	handler.SignIn(c)

	require.Len(t, c.Errors, 1)
	assert.True(t, errdef.IsUnauthorized(c.Errors.Last()))
}

func newPost(t *testing.T, path string, body any) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	request.Header.Set("Content-Type", "application/json")
	return request
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) SignUp(ctx context.Context, firstName, lastName, email, password string, role model.Role) (*model.User, error) {
	called := m.Called(ctx, firstName, lastName, email, password, role)
	user, _ := called.Get(0).(*model.User)
	return user, called.Error(1)
}

func (m *mockUserService) SignIn(ctx context.Context, email string, password string) (*model.User, error) {
	called := m.Called(ctx, email, password)
	user, _ := called.Get(0).(*model.User)
	return user, called.Error(1)
}

func (m *mockUserService) FindById(ctx context.Context, id uint) (*model.User, error) {
	called := m.Called(ctx, id)
	user, _ := called.Get(0).(*model.User)
	return user, called.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GetTokens(user *model.User, previousTokenId string, rememberMe bool) (*token.Tokens, error) {
	called := m.Called(user, previousTokenId, rememberMe)
	tokens, _ := called.Get(0).(*token.Tokens)
	return tokens, called.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*token.RefreshTokenData, error) {
	called := m.Called(ctx, tokenString)
	data, _ := called.Get(0).(*token.RefreshTokenData)
	return data, called.Error(1)
}

func (m *mockTokenService) SignOut(userId uint) error {
	return m.Called(userId).Error(0)
}

package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takimet-io/takimet/internal/errdef"
)

type testRequest struct {
	Name string `json:"name" binding:"required"`
}

func TestDataBinder(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name": "takim"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var request testRequest
	err := DataBinder(c, &request)

	require.NoError(t, err)
	assert.Equal(t, "takim", request.Name)
}

func TestDataBinder_MissingRequiredField(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var request testRequest
	err := DataBinder(c, &request)

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
}

func TestDataBinder_WrongContentType(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=takim"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var request testRequest
	err := DataBinder(c, &request)

	require.Error(t, err)
	assert.True(t, errdef.IsUnsupportedMediaType(err))
	assert.EqualError(t, err, " only accepts content of type application/json or multipart/form-data")
}

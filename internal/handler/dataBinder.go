package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/errdef"
)

// DataBinder binds the request body into req and classifies failures so the
// error middleware can map them to 400/415.
func DataBinder(c *gin.Context, req interface{}) error {
	contentType := c.ContentType()
	if contentType != "application/json" && !strings.HasPrefix(contentType, "multipart/form-data") {
		return errdef.NewUnsupportedMediaType("%s only accepts content of type application/json or multipart/form-data", c.FullPath())
	}

	if err := c.ShouldBind(req); err != nil {
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}

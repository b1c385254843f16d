package v1

import (
	"errors"
	"io"
	"strconv"

	"skills-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// pathID parses :id. A malformed id cannot match any row, so it is reported
// as not found rather than as a bad request.
func pathID(c *gin.Context, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.Error(apperror.NotFound(notFoundMsg))
		return 0, false
	}
	return id, true
}

// bindBody decodes a JSON body into dst. An empty body leaves dst zero so the
// usecase reports the missing fields.
func bindBody(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return false
	}
	return true
}

package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperr"
)

// badBody is returned when a request body is not valid JSON or has a field
// of the wrong type
var badBody = apperr.BadRequest(apperr.MsgInvalidInput)

// bindJSON decodes the request body into dst. An absent body leaves dst
// untouched so the service can report the missing fields itself.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return badBody
	}
	return nil
}

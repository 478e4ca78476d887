// Package validation provides request guards for the kentsel API. Field
// values themselves are deliberately accepted as sent; only shape and size
// are checked here.
package validation

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxRequestSize is the maximum request body size (1MB)
const MaxRequestSize = 1 << 20

// ErrInvalidID is returned by ParseID for non-integer identifiers.
var ErrInvalidID = errors.New("id must be an integer")

// RequestSizeMiddleware limits request body size
func RequestSizeMiddleware(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":   "request_too_large",
				"message": "Request body exceeds " + strconv.FormatInt(maxSize, 10) + " bytes",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// ParseID parses a decimal int64 identifier from a path or query value.
// Surrounding whitespace is ignored; anything else non-numeric is rejected.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

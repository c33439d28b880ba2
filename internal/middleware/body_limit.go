package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// BodyLimit rejects requests whose declared Content-Length exceeds limit and
// caps the body reader for chunked uploads, so JSON binding fails with an
// *http.MaxBytesError instead of buffering an unbounded payload.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			abortWithError(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				"Request body exceeds "+strconv.FormatInt(limit, 10)+" bytes",
				gin.H{"limitBytes": limit})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

package mw

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// cachedResponse is a replayable snapshot of one GET response. Mutating
// handlers flush the whole cache, so entries never outlive a write to the
// collections they were derived from.
type cachedResponse struct {
	contentType string
	body        []byte
}

// captureWriter tees the response body so it can be stored after the
// handler runs.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Cache serves repeated GETs of the same URI from memory. Only 200
// responses are stored; errors are always recomputed.
func Cache(store *cache.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		if hit, found := store.Get(key); found {
			cached := hit.(cachedResponse)
			c.Header("Content-Type", cached.contentType)
			c.Writer.WriteHeader(http.StatusOK)
			c.Writer.Write(cached.body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = cw

		c.Next()

		if cw.Status() == http.StatusOK {
			store.Set(key, cachedResponse{
				contentType: cw.Header().Get("Content-Type"),
				body:        cw.body.Bytes(),
			}, ttl)
		}
	}
}

package analytics

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var untrackedPrefixes = []string{"/static/", "/admin", "/favicon", "/healthz"}

// Tracked reports whether a request path counts as a page view.
func Tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records GET page views in the background. Requests carrying
// DNT: 1 are never recorded.
func Middleware(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !Tracked(path) || DoNotTrack(c.Request) {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		s.Go("visit", func(ctx context.Context) error {
			return s.RecordVisit(ctx, ip, ua, path)
		})
		c.Next()
	}
}

// DoNotTrack reports whether the client opted out.
func DoNotTrack(r *http.Request) bool {
	return r.Header.Get("DNT") == "1"
}

package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brettarda/brett-dev/internal/view"
)

const (
	adminCookie    = "admin_token"
	adminCookieAge = 24 * 60 * 60
)

// adminAuthMiddleware sends anyone without the session token to the login
// page.
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword))
	return userOK&passOK == 1
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		html(c, http.StatusOK, view.AdminLogin(""))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		hashed := s.analytics.HashIP(c.ClientIP())
		if !s.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			logger(c).Warn().Str("visitor", hashed).Msg("failed admin login")
			html(c, http.StatusUnauthorized, view.AdminLogin("Invalid credentials"))
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, adminCookieAge, "/admin", "", s.cfg.SecureCookies, true)
		logger(c).Info().Str("visitor", hashed).Msg("admin login")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.cfg.SecureCookies, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			logger(c).Error().Err(err).Msg("load admin stats")
			html(c, http.StatusInternalServerError, view.AdminError("Failed to load statistics"))
			return
		}
		html(c, http.StatusOK, view.AdminDashboard(stats))
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.analytics.Cleanup(c.Request.Context(), s.cfg.AnalyticsRetention)
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		if wantsJSON(c) {
			c.JSON(http.StatusOK, gin.H{"removed": removed})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	})
}

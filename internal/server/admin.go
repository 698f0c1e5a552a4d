package server

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hinaltilavat/portfolio/internal/metrics"
)

const adminCookie = "admin_token"

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// adminAuth redirects to the login page unless the request carries the
// session token.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equalConstantTime(token, s.opts.AdminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) clientID(c *gin.Context) string {
	if s.opts.Hasher == nil {
		return "unknown"
	}
	return s.opts.Hasher.Hash(c.ClientIP())
}

func (s *Server) setupAdminRoutes() {
	r := s.engine

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		userOK := equalConstantTime(c.PostForm("username"), s.opts.AdminUsername)
		passOK := equalConstantTime(c.PostForm("password"), s.opts.AdminPassword)
		if !userOK || !passOK || s.opts.AdminToken == "" {
			metrics.AdminLogin(false)
			log.Warn().Str("client", s.clientID(c)).Msg("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		metrics.AdminLogin(true)
		c.SetCookie(adminCookie, s.opts.AdminToken, int((24 * time.Hour).Seconds()), "/admin", "", false, true)
		log.Info().Str("client", s.clientID(c)).Msg("admin login successful")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Info().Str("client", s.clientID(c)).Msg("admin logout")
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.opts.Store.Stats(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.opts.Store.Recent(c.Request.Context(), 200)
		if err != nil {
			log.Error().Err(err).Msg("error loading visitors")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visitors})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.opts.Store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.opts.Store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Info().Str("client", s.clientID(c)).Msg("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})

	// Retention is enforced by the background sweeper; this runs it on demand.
	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.opts.Store.Cleanup(c.Request.Context(), s.opts.Retention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
	})
}

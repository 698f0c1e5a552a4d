// Package server wires the portfolio page, privacy notice, and admin
// dashboard into a gin engine.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hinaltilavat/portfolio/internal/analytics"
	"github.com/hinaltilavat/portfolio/internal/content"
	"github.com/hinaltilavat/portfolio/internal/logging"
	"github.com/hinaltilavat/portfolio/internal/metrics"
	"github.com/hinaltilavat/portfolio/internal/page"
	"github.com/hinaltilavat/portfolio/internal/visibility"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Options configures the page model and, when Store is set, the admin
// surface.
type Options struct {
	ViewportHeight float64
	Threshold      float64

	// Store enables visitor tracking and the admin dashboard when non-nil.
	Store   *analytics.Store
	Tracker *analytics.Tracker
	Hasher  *analytics.Hasher
	// Retention bounds how long visits are kept. Defaults to a year.
	Retention time.Duration

	AdminUsername string
	AdminPassword string
	AdminToken    string
}

// Server is the gin application for the portfolio.
type Server struct {
	engine  *gin.Engine
	content *content.Content
	opts    Options
}

// New parses the embedded templates and registers every route. Admin routes
// are registered only when opts.Store is non-nil.
func New(c *content.Content, opts Options) (*Server, error) {
	if opts.Retention <= 0 {
		opts.Retention = 365 * 24 * time.Hour
	}
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"linkTarget": func() string { return content.LinkTarget },
		"linkRel":    func() string { return content.LinkRel },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(), metrics.Middleware())
	if opts.Tracker != nil {
		r.Use(opts.Tracker.Middleware())
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	s := &Server{engine: r, content: c, opts: opts}

	r.GET("/", s.home)
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":    "Privacy Policy",
			"tracking": opts.Tracker != nil,
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	if opts.Store != nil {
		s.setupAdminRoutes()
	}
	return s, nil
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Serve listens on addr until ctx is cancelled, then drains in-flight
// requests for up to ten seconds.
func (s *Server) Serve(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// home renders one mounted page view. ?section=<region> deep links to a
// region: the navigator activates it, then the queued scroll moves the page
// there before render.
func (s *Server) home(c *gin.Context) {
	p := page.New(s.content, page.Options{
		ViewportHeight: s.opts.ViewportHeight,
		Threshold:      s.opts.Threshold,
		OnReveal: func(r visibility.Region) {
			metrics.RegionRevealed(string(r))
		},
	})
	defer p.Close()

	if section := c.Query("section"); section != "" {
		if err := p.Navigate(visibility.Region(section)); err != nil {
			log.Debug().Err(err).Msg("ignoring deep link")
		}
	}

	c.HTML(http.StatusOK, "index.html", p.View())
}

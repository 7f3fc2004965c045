package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
)

//go:embed templates/*.html
var templates embed.FS

const shutdownTimeout = 5 * time.Second

// Server serves the calculator form and its JSON API.
type Server struct {
	catalog atomic.Pointer[catalog.Catalog]
	addr    string
	logger  *zap.Logger
	engine  *gin.Engine
}

// New creates a server pricing against cat and listening on addr.
func New(cat *catalog.Catalog, addr string, logger *zap.Logger) *Server {
	s := &Server{
		addr:   addr,
		logger: logger,
	}
	s.catalog.Store(cat)
	s.engine = s.routes()
	return s
}

// Catalog returns the catalog requests are currently priced against.
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog.Load()
}

// SetCatalog swaps the catalog for subsequent requests.
func (s *Server) SetCatalog(c *catalog.Catalog) {
	s.catalog.Store(c)
	s.logger.Info("catalog replaced", zap.Int("kinds", len(c.Kinds())))
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("calculator server starting",
			zap.String("addr", s.addr),
			zap.Int("kinds", len(s.Catalog().Kinds())))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("calculator server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.Use(cors.New(corsConfig()))

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"comma":        func(v int) string { return humanize.Comma(int64(v)) },
		"currency":     currencyLabel,
		"seq":          seq,
		"currentField": currentField,
		"targetField":  targetField,
		"inc":          func(v int) int { return v + 1 },
	}).ParseFS(templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.handleIndex)
	r.POST("/", s.handleSubmit)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	api.GET("/catalog", s.handleCatalog)
	api.GET("/cost", s.handleCost)
	api.POST("/plan", s.handlePlan)
	api.GET("/validation", s.handleValidation)

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an ID and logs one line for it.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)

		c.Next()
		logger.Debug("request",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func currencyLabel(c catalog.Currency) string {
	if c == catalog.Coin {
		return "Coins"
	}
	return "Diamonds"
}

// seq returns lo..hi inclusive.
func seq(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}

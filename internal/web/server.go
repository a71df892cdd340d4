package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/config"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
	"github.com/bigredeye/gradebook/internal/records"
	"github.com/bigredeye/gradebook/internal/report"
)

// Server exposes records, results and generated reports over HTTP. Every
// handler touching the flat files runs under a single mutex: ledgers may be
// created on read and the pipeline rewrites report files.
type Server struct {
	config *config.Config
	logger *zap.Logger

	mu        sync.Mutex
	students  *records.Document[models.Student]
	courses   *records.Document[models.Course]
	generator *report.Generator
}

func NewServer(
	config *config.Config,
	logger *zap.Logger,
	students *records.Document[models.Student],
	courses *records.Document[models.Course],
	generator *report.Generator,
) *Server {
	return &Server{
		config:    config,
		logger:    logger.With(lf.Module("web")),
		students:  students,
		courses:   courses,
		generator: generator,
	}
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))

	setupApiService(s, r)

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong "+fmt.Sprint(time.Now().Unix()))
	})

	r.GET("/reports/:file", s.reportFile)

	return r
}

// reportFile serves generated pages and charts only; the report dir may be
// shared with the records and ledgers.
func (s *Server) reportFile(c *gin.Context) {
	name := c.Param("file")
	if !report.IsArtifact(name) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(filepath.Join(s.config.Reports.Dir, name))
}

func (s *Server) Run() error {
	r := s.Router()
	s.logger.Info("Starting server", zap.String("bind_address", s.config.Server.ListenAddress))
	return r.Run(s.config.Server.ListenAddress)
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mn-frappe/ebalance/internal/config"
	mappingdomain "github.com/mn-frappe/ebalance/internal/mapping/domain"
	"github.com/mn-frappe/ebalance/internal/mof"
	"github.com/mn-frappe/ebalance/internal/period"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"github.com/mn-frappe/ebalance/internal/scheduler"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	cfg        config.Config
	log        *zap.Logger
	mappingSvc mappingdomain.Service
	reportSvc  reportdomain.Service
	periods    period.Repository
	worker     *scheduler.Worker
	api        mof.API
}

type Params struct {
	fx.In

	Config     config.Config
	Log        *zap.Logger
	MappingSvc mappingdomain.Service
	ReportSvc  reportdomain.Service
	Periods    period.Repository
	Worker     *scheduler.Worker
	API        mof.API
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:        p.Config,
		log:        p.Log.Named("server"),
		mappingSvc: p.MappingSvc,
		reportSvc:  p.ReportSvc,
		periods:    p.Periods,
		worker:     p.Worker,
		api:        p.API,
	}
}

func (s *Server) Router() *gin.Engine {
	if s.cfg.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", s.Health)

	v1 := engine.Group("/v1")
	{
		v1.POST("/mappings/auto", s.AutoMap)
		v1.POST("/mappings/manual", s.SetManualMapping)
		v1.GET("/mappings/suggest", s.SuggestCode)

		v1.POST("/reports", s.CreateReport)
		v1.GET("/reports/:id", s.GetReport)
		v1.POST("/reports/:id/generate", s.GenerateReport)
		v1.POST("/reports/:id/save", s.SaveReportDraft)
		v1.POST("/reports/:id/submit", s.SubmitReport)
		v1.POST("/reports/:id/poll", s.PollReport)

		v1.GET("/periods", s.ListPeriods)
		v1.POST("/periods/sync", s.SyncPeriods)

		v1.GET("/connection/test", s.TestConnection)
	}
	return engine
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "environment": s.cfg.Environment})
}

func (s *Server) ListPeriods(c *gin.Context) {
	periods, err := s.periods.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

func (s *Server) SyncPeriods(c *gin.Context) {
	if err := s.worker.SyncPeriods(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) TestConnection(c *gin.Context) {
	info, err := s.api.TestConnection(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

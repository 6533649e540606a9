package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
)

func (s *Server) CreateReport(c *gin.Context) {
	var req struct {
		Company     string `json:"company"`
		PeriodStart string `json:"period_start"`
		PeriodEnd   string `json:"period_end"`
		ReportType  string `json:"report_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.Company) == "" {
		AbortWithError(c, newValidationError("company", "required", "company is required"))
		return
	}
	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		AbortWithError(c, newValidationError("period_start", "invalid_date", "period_start must be YYYY-MM-DD"))
		return
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		AbortWithError(c, newValidationError("period_end", "invalid_date", "period_end must be YYYY-MM-DD"))
		return
	}

	request, err := s.reportSvc.Create(c.Request.Context(), req.Company, periodStart, periodEnd, reportdomain.ReportType(req.ReportType))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (s *Server) GetReport(c *gin.Context) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	request, err := s.reportSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (s *Server) GenerateReport(c *gin.Context) {
	s.transition(c, s.reportSvc.Generate)
}

func (s *Server) SaveReportDraft(c *gin.Context) {
	s.transition(c, s.reportSvc.SaveDraft)
}

func (s *Server) SubmitReport(c *gin.Context) {
	s.transition(c, s.reportSvc.Submit)
}

func (s *Server) PollReport(c *gin.Context) {
	s.transition(c, s.reportSvc.PollStatus)
}

func (s *Server) transition(c *gin.Context, op func(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error)) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	request, err := op(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func reportID(c *gin.Context) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_report_id", "invalid report id"))
		return 0, false
	}
	return id, true
}

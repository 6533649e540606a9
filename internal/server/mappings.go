package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

func (s *Server) AutoMap(c *gin.Context) {
	var req struct {
		Company string `json:"company"`
		DryRun  bool   `json:"dry_run"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.Company = strings.TrimSpace(req.Company)
	if req.Company == "" {
		AbortWithError(c, newValidationError("company", "required", "company is required"))
		return
	}

	result, err := s.mappingSvc.ProposeMappings(c.Request.Context(), req.Company, req.DryRun)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) SetManualMapping(c *gin.Context) {
	var req struct {
		LedgerAccountID string `json:"ledger_account_id"`
		TaxonomyCode    string `json:"taxonomy_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	accountID, err := snowflake.ParseString(strings.TrimSpace(req.LedgerAccountID))
	if err != nil {
		AbortWithError(c, newValidationError("ledger_account_id", "invalid_ledger_account_id", "invalid ledger account id"))
		return
	}

	if err := s.mappingSvc.SetManualMapping(c.Request.Context(), accountID, req.TaxonomyCode); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) SuggestCode(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	number := strings.TrimSpace(c.Query("number"))

	suggestions, err := s.mappingSvc.SuggestCode(c.Request.Context(), name, number)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

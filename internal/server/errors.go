package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	ledgerdomain "github.com/mn-frappe/ebalance/internal/ledger/domain"
	mappingdomain "github.com/mn-frappe/ebalance/internal/mapping/domain"
	"github.com/mn-frappe/ebalance/internal/mof"
	"github.com/mn-frappe/ebalance/internal/period"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
)

// APIError is the machine-readable error body returned by every route.
type APIError struct {
	Status  int    `json:"-"`
	Kind    string `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

var (
	ErrNotFound = &APIError{Status: http.StatusNotFound, Kind: "not_found", Message: "resource not found"}
)

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Kind: "invalid_request", Message: "malformed request body"}
}

func newValidationError(field, kind, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Kind: kind, Field: field, Message: message}
}

// AbortWithError maps domain sentinels and client errors onto HTTP codes.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, apiErr)
		return
	}

	var authErr *mof.AuthError
	var netErr *mof.NetworkError
	var remoteErr *mof.RemoteError
	switch {
	case errors.Is(err, reportdomain.ErrReportNotFound),
		errors.Is(err, period.ErrPeriodNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, &APIError{Kind: "not_found", Message: err.Error()})
	case errors.Is(err, reportdomain.ErrOperationInProgress):
		c.AbortWithStatusJSON(http.StatusConflict, &APIError{Kind: "operation_in_progress", Message: "operation already in progress"})
	case errors.Is(err, reportdomain.ErrInvalidTransition),
		errors.Is(err, reportdomain.ErrPayloadMissing):
		c.AbortWithStatusJSON(http.StatusConflict, &APIError{Kind: "invalid_transition", Message: err.Error()})
	case errors.Is(err, reportdomain.ErrInvalidReportType),
		errors.Is(err, mappingdomain.ErrUnknownTaxonomyCode),
		errors.Is(err, mappingdomain.ErrGroupTaxonomyCode),
		errors.Is(err, mappingdomain.ErrInvalidAccount):
		c.AbortWithStatusJSON(http.StatusBadRequest, &APIError{Kind: "validation_error", Message: err.Error()})
	case errors.Is(err, ledgerdomain.ErrLedgerUnavailable):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, &APIError{Kind: "ledger_unavailable", Message: err.Error()})
	case errors.As(err, &authErr):
		c.AbortWithStatusJSON(http.StatusBadGateway, &APIError{Kind: "auth_error", Message: authErr.Message})
	case errors.As(err, &netErr):
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, &APIError{Kind: "network_error", Message: netErr.Error()})
	case errors.As(err, &remoteErr):
		c.AbortWithStatusJSON(http.StatusBadGateway, &APIError{Kind: "remote_error", Message: remoteErr.Message})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, &APIError{Kind: "internal", Message: "internal error"})
	}
}

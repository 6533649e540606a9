package mof

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mn-frappe/ebalance/internal/cache"
	"github.com/mn-frappe/ebalance/internal/config"
	"github.com/mn-frappe/ebalance/internal/logger"
	"github.com/mn-frappe/ebalance/internal/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Endpoint paths of the MOF eBalance inspector services.
const (
	pathWritingConfigs  = "/rest/mof-ebalance-inspector-service/tpiRequest/getWritingConfigs"
	pathUserRoles       = "/rest/mof-ebalance-out-service/perRole/getUserRoles"
	pathReportOrgList   = "/rest/mof-ebalance-out-service/reportConnectConfig/getAllConfigWithReportOrgList"
	pathReportRequests  = "/rest/mof-ebalance-out-service/reportConnectConfig/getReportUserOrgHdrList"
	pathDecideReport    = "/rest/mof-ebalance-out-service/reportConnectConfig/decideReportUserOrgHdr"
	pathReportData      = "/rest/mof-ebalance-out-service/reportData/getReportData"
	pathReportPackage   = "/rest/mof-ebalance-out-service/reportConnectConfig/getReportPackageMap"
	pathSaveReport      = "/rest/mof-ebalance-out-service/calculate/saveReportData"
	pathSendReport      = "/rest/mof-ebalance-out-service/calculate/sendReportData"
	pathConfirmedReport = "/rest/tpiRequest/getConfirmedReportData"
)

var apiBaseURLs = map[config.Environment]string{
	config.EnvStaging:    "https://st-inspector-ebalance.mof.gov.mn",
	config.EnvProduction: "https://inspector-ebalance.mof.gov.mn",
}

// Reference data changes rarely on the remote side.
const referenceCacheTTL = 10 * time.Minute

// API is the typed surface over the ten regulator endpoints. Every call
// returns a redacted CallRecord for the audit trail, populated on failure
// too.
type API interface {
	GetWritingConfigs(ctx context.Context) ([]WritingConfig, CallRecord, error)
	GetUserRoles(ctx context.Context) ([]UserRole, CallRecord, error)
	GetReportOrgList(ctx context.Context, writingConfigCode string) ([]ReportOrgConfig, CallRecord, error)
	GetReportRequests(ctx context.Context, reportWritingConfigID int64) ([]ReportUserOrgHdr, CallRecord, error)
	DecideReportUserOrgHdr(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) ([]ReportForm, CallRecord, error)
	GetReportData(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) (*ReportData, CallRecord, error)
	GetReportPackageMap(ctx context.Context, reportUserOrgHdrID int64) ([]ReportForm, CallRecord, error)
	SaveReportData(ctx context.Context, reportUserOrgHdrID int64, cells []CellValue) (*SaveResult, CallRecord, error)
	SendReportData(ctx context.Context, reportUserOrgHdrID int64) (*SendResult, CallRecord, error)
	GetConfirmedReportData(ctx context.Context, writingConfigCode string) (*ConfirmedReport, CallRecord, error)
	TestConnection(ctx context.Context) (*ConnectionInfo, error)
}

type Client struct {
	cfg    config.Config
	log    *zap.Logger
	tokens *TokenManager
	http   *http.Client

	periods *cache.Ref[[]WritingConfig]
	roles   *cache.Ref[[]UserRole]
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	Tokens *TokenManager
}

func NewClient(p Params) *Client {
	return &Client{
		cfg:     p.Config,
		log:     p.Log.Named("mof.client"),
		tokens:  p.Tokens,
		http:    tracing.WrapHTTPClient(&http.Client{Timeout: p.Config.RequestTimeout}),
		periods: cache.NewRef[[]WritingConfig](),
		roles:   cache.NewRef[[]UserRole](),
	}
}

func (c *Client) baseURL() string {
	if c.cfg.APIBaseURL != "" {
		return strings.TrimRight(c.cfg.APIBaseURL, "/")
	}
	return apiBaseURLs[c.cfg.Environment]
}

func (c *Client) commonHeaders(extra map[string]string) map[string]string {
	headers := map[string]string{}
	if c.cfg.UserRegNo != "" {
		// Cyrillic registration numbers must be URL-encoded in headers.
		headers["userRegNo"] = url.QueryEscape(c.cfg.UserRegNo)
	}
	if c.cfg.OrgRegNo != "" {
		headers["orgRegNo"] = c.cfg.OrgRegNo
	}
	for key, value := range extra {
		headers[key] = value
	}
	return headers
}

func (c *Client) roleHeaders(extra map[string]string) map[string]string {
	headers := map[string]string{"perMapUserRoleID": c.cfg.PerMapUserRoleID}
	for key, value := range extra {
		headers[key] = value
	}
	return c.commonHeaders(headers)
}

// do performs one logical call with bounded retries. Transport failures and
// 5xx responses are retried with exponential backoff; a 401 triggers exactly
// one token refresh-and-retry; structured 4xx bodies become RemoteError and
// are never retried.
func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body any, out any) (CallRecord, error) {
	record := CallRecord{
		Endpoint:       path,
		RequestSummary: requestSummary(method, path, headers),
	}

	var bodyBytes []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			record.ResponseSummary = err.Error()
			return record, fmt.Errorf("encode request body: %w", err)
		}
		bodyBytes = encoded
	}

	refreshed := false
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			backoff := c.cfg.RetryBackoff << (attempt - 2)
			select {
			case <-ctx.Done():
				record.ResponseSummary = ctx.Err().Error()
				return record, &NetworkError{Endpoint: path, Attempts: attempt - 1, Err: ctx.Err()}
			case <-time.After(backoff):
			}
		}

		token, err := c.tokens.Token(ctx)
		if err != nil {
			record.ResponseSummary = err.Error()
			return record, err
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, bytes.NewReader(bodyBytes))
		if err != nil {
			record.ResponseSummary = err.Error()
			return record, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.log.Warn("request failed",
				zap.String("endpoint", path),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}
		record.HTTPStatus = resp.StatusCode

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			if refreshed {
				record.ResponseSummary = "unauthorized after token refresh"
				return record, &AuthError{Message: "token rejected after refresh"}
			}
			refreshed = true
			c.tokens.Invalidate()
			attempt-- // the refreshed retry does not consume the budget
			continue
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			continue
		case resp.StatusCode >= 400:
			message := remoteMessage(respBody)
			record.ResponseSummary = fmt.Sprintf("http %d: %s", resp.StatusCode, message)
			return record, &RemoteError{Endpoint: path, StatusCode: resp.StatusCode, Message: message}
		}

		var env envelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			record.ResponseSummary = "malformed response body"
			return record, &RemoteError{Endpoint: path, StatusCode: resp.StatusCode, Message: "malformed response body"}
		}
		record.ResponseSummary = truncate(fmt.Sprintf("statusCode=%d message=%s", env.StatusCode, env.Message), 500)

		if env.StatusCode != http.StatusOK {
			return record, &RemoteError{Endpoint: path, StatusCode: env.StatusCode, Message: env.Message}
		}
		if out != nil && len(env.Result) > 0 {
			if err := json.Unmarshal(env.Result, out); err != nil {
				record.ResponseSummary = "malformed result payload"
				return record, &RemoteError{Endpoint: path, StatusCode: env.StatusCode, Message: "malformed result payload"}
			}
		}
		record.Success = true
		return record, nil
	}

	record.ResponseSummary = fmt.Sprintf("gave up after %d attempts: %v", c.cfg.MaxAttempts, lastErr)
	return record, &NetworkError{Endpoint: path, Attempts: c.cfg.MaxAttempts, Err: lastErr}
}

func (c *Client) GetWritingConfigs(ctx context.Context) ([]WritingConfig, CallRecord, error) {
	if configs, ok := c.periods.Get(); ok {
		return configs, CallRecord{Endpoint: pathWritingConfigs, Success: true, ResponseSummary: "served from cache"}, nil
	}
	var configs []WritingConfig
	record, err := c.do(ctx, http.MethodGet, pathWritingConfigs, c.commonHeaders(nil), nil, &configs)
	if err != nil {
		return nil, record, err
	}
	c.periods.Set(configs, referenceCacheTTL)
	return configs, record, nil
}

func (c *Client) GetUserRoles(ctx context.Context) ([]UserRole, CallRecord, error) {
	if roles, ok := c.roles.Get(); ok {
		return roles, CallRecord{Endpoint: pathUserRoles, Success: true, ResponseSummary: "served from cache"}, nil
	}
	var roles []UserRole
	record, err := c.do(ctx, http.MethodGet, pathUserRoles, c.commonHeaders(nil), nil, &roles)
	if err != nil {
		return nil, record, err
	}
	c.roles.Set(roles, referenceCacheTTL)
	return roles, record, nil
}

func (c *Client) GetReportOrgList(ctx context.Context, writingConfigCode string) ([]ReportOrgConfig, CallRecord, error) {
	var configs []ReportOrgConfig
	record, err := c.do(ctx, http.MethodGet, pathReportOrgList, c.roleHeaders(map[string]string{
		"writingConfigCode": writingConfigCode,
	}), nil, &configs)
	return configs, record, err
}

func (c *Client) GetReportRequests(ctx context.Context, reportWritingConfigID int64) ([]ReportUserOrgHdr, CallRecord, error) {
	var hdrs []ReportUserOrgHdr
	record, err := c.do(ctx, http.MethodGet, pathReportRequests, c.roleHeaders(map[string]string{
		"reportWritingConfigId": strconv.FormatInt(reportWritingConfigID, 10),
	}), nil, &hdrs)
	return hdrs, record, err
}

func (c *Client) DecideReportUserOrgHdr(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) ([]ReportForm, CallRecord, error) {
	var forms []ReportForm
	record, err := c.do(ctx, http.MethodGet, pathDecideReport, c.roleHeaders(map[string]string{
		"reportWritingConfigId": strconv.FormatInt(reportWritingConfigID, 10),
		"reportUserOrgHdrId":    strconv.FormatInt(reportUserOrgHdrID, 10),
	}), nil, &forms)
	return forms, record, err
}

func (c *Client) GetReportData(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) (*ReportData, CallRecord, error) {
	var data ReportData
	record, err := c.do(ctx, http.MethodGet, pathReportData, c.roleHeaders(map[string]string{
		"reportWritingConfigId": strconv.FormatInt(reportWritingConfigID, 10),
		"reportUserOrgHdrId":    strconv.FormatInt(reportUserOrgHdrID, 10),
	}), nil, &data)
	if err != nil {
		return nil, record, err
	}
	return &data, record, nil
}

func (c *Client) GetReportPackageMap(ctx context.Context, reportUserOrgHdrID int64) ([]ReportForm, CallRecord, error) {
	var forms []ReportForm
	record, err := c.do(ctx, http.MethodGet, pathReportPackage, c.roleHeaders(map[string]string{
		"reportUserOrgHdrId": strconv.FormatInt(reportUserOrgHdrID, 10),
	}), nil, &forms)
	return forms, record, err
}

func (c *Client) SaveReportData(ctx context.Context, reportUserOrgHdrID int64, cells []CellValue) (*SaveResult, CallRecord, error) {
	var result SaveResult
	record, err := c.do(ctx, http.MethodPost, pathSaveReport, c.commonHeaders(nil), saveReportBody{
		ReportUserOrgHdrID: reportUserOrgHdrID,
		CellModelList:      cells,
	}, &result)
	if err != nil {
		return nil, record, err
	}
	return &result, record, nil
}

func (c *Client) SendReportData(ctx context.Context, reportUserOrgHdrID int64) (*SendResult, CallRecord, error) {
	var result SendResult
	record, err := c.do(ctx, http.MethodPost, pathSendReport, c.roleHeaders(nil), sendReportBody{
		ReportUserOrgHdrID: reportUserOrgHdrID,
	}, &result)
	if err != nil {
		return nil, record, err
	}
	return &result, record, nil
}

func (c *Client) GetConfirmedReportData(ctx context.Context, writingConfigCode string) (*ConfirmedReport, CallRecord, error) {
	var confirmed ConfirmedReport
	record, err := c.do(ctx, http.MethodGet, pathConfirmedReport, c.commonHeaders(map[string]string{
		"writingConfigCode": writingConfigCode,
	}), nil, &confirmed)
	if err != nil {
		return nil, record, err
	}
	return &confirmed, record, nil
}

// TestConnection exercises the token exchange and role discovery, returning
// the perMapUserRoleID needed by the other endpoints.
func (c *Client) TestConnection(ctx context.Context) (*ConnectionInfo, error) {
	c.tokens.Invalidate()
	if _, err := c.tokens.Token(ctx); err != nil {
		return nil, err
	}
	c.roles.Invalidate()
	roles, _, err := c.GetUserRoles(ctx)
	if err != nil {
		return nil, err
	}
	info := &ConnectionInfo{Environment: c.cfg.Environment}
	if len(roles) > 0 {
		info.PerMapUserRoleID = strconv.FormatInt(roles[0].ID, 10)
		info.Organization = roles[0].UserOrganization.Name
	}
	return info, nil
}

func requestSummary(method, path string, headers map[string]string) string {
	if len(headers) == 0 {
		return method + " " + path
	}
	header := make(http.Header, len(headers))
	for key, value := range headers {
		header[key] = []string{value}
	}
	masked := logger.MaskHeaders(header)
	keys := make([]string, 0, len(masked))
	for key := range masked {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+masked[key])
	}
	return fmt.Sprintf("%s %s [%s]", method, path, strings.Join(parts, " "))
}

func remoteMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return truncate(string(body), 200)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

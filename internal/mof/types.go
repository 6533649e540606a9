package mof

import (
	"encoding/json"
	"time"

	"github.com/mn-frappe/ebalance/internal/config"
)

// Session is the cached OAuth2 state for one environment. Process-lifetime
// only; never persisted to durable storage.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Environment  config.Environment
}

// envelope is the regulator's uniform response wrapper.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Result     json.RawMessage `json:"result"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// WritingConfig is one remote report period (getWritingConfigs).
type WritingConfig struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	BeginDate string `json:"beginDate"`
	EndDate   string `json:"endDate"`
}

// UserRole carries the perMapUserRoleId required by most endpoints
// (getUserRoles).
type UserRole struct {
	ID               int64  `json:"id"`
	PerRole          string `json:"perRole"`
	UserOrganization struct {
		RegNo string `json:"regNo"`
		Name  string `json:"name"`
	} `json:"userOrganization"`
}

// ReportOrgConfig is a period connected to the organization
// (getAllConfigWithReportOrgList).
type ReportOrgConfig struct {
	ID                int64  `json:"id"`
	WritingConfigCode string `json:"writingConfigCode"`
	OrgRegNo          string `json:"orgRegNo"`
	OrgName           string `json:"orgName"`
}

// ReportUserOrgHdr is one remote report request (getReportUserOrgHdrList).
type ReportUserOrgHdr struct {
	ID                    int64  `json:"id"`
	ReportWritingConfigID int64  `json:"reportWritingConfigId"`
	Status                string `json:"status"`
	OrgRegNo              string `json:"orgRegNo"`
}

// ReportForm names one form inside a report package
// (decideReportUserOrgHdr, getReportPackageMap).
type ReportForm struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// FormCell is one addressable cell of a remote form (getReportData).
type FormCell struct {
	ID         int64  `json:"id"`
	RowCode    string `json:"rowCode"`
	ColumnCode string `json:"columnCode"`
	CellValue  string `json:"cellValue"`
}

// ReportDataForm is one form of the remote report package with its cells.
type ReportDataForm struct {
	ID    int64      `json:"id"`
	Code  string     `json:"code"`
	Name  string     `json:"name"`
	Cells []FormCell `json:"cells"`
}

// ReportData is the remote form structure with validation expressions.
type ReportData struct {
	Forms            []ReportDataForm `json:"forms"`
	CheckExpressions []string         `json:"checkExpressions"`
}

// AllCells flattens the form hierarchy.
func (d *ReportData) AllCells() []FormCell {
	var cells []FormCell
	for _, form := range d.Forms {
		cells = append(cells, form.Cells...)
	}
	return cells
}

// CellValue is one entry of the cellModelList sent to saveReportData.
type CellValue struct {
	ID        int64  `json:"id"`
	CellValue string `json:"cellValue"`
}

type saveReportBody struct {
	ReportUserOrgHdrID int64       `json:"reportUserOrgHdrId"`
	CellModelList      []CellValue `json:"cellModelList"`
}

type sendReportBody struct {
	ReportUserOrgHdrID int64 `json:"reportUserOrgHdrId"`
}

// SaveResult reports remote validation outcomes for a draft save.
type SaveResult struct {
	ValidExpKeys  []string `json:"validExpKeys"`
	ValidCellKeys []string `json:"validCellKeys"`
}

// SendResult reports remote validation outcomes for a final submission.
type SendResult struct {
	ValidExpKeys  []string `json:"validExpKeys"`
	ValidCellKeys []string `json:"validCellKeys"`
}

// ConfirmedReport is the regulator's confirmed-report record, present only
// once the submission has been approved on the remote side
// (getConfirmedReportData).
type ConfirmedReport struct {
	WritingConfigCode string            `json:"writingConfigCode"`
	OrgRegNo          string            `json:"orgRegNo"`
	Status            string            `json:"status"`
	Values            []json.RawMessage `json:"values"`
}

// CallRecord summarizes one remote call for the audit trail. Summaries are
// already redacted; tokens never appear here.
type CallRecord struct {
	Endpoint        string
	RequestSummary  string
	ResponseSummary string
	HTTPStatus      int
	Success         bool
}

// ConnectionInfo is the result of a successful connection test.
type ConnectionInfo struct {
	Environment      config.Environment `json:"environment"`
	PerMapUserRoleID string             `json:"per_map_user_role_id"`
	Organization     string             `json:"organization"`
}

package transport

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	estimatetransport "roofscope_backend/internal/estimate/transport"
)

// Role values accepted by the report pipeline.
const (
	RoleHomeowner         = "homeowner"
	RoleContractor        = "contractor"
	RoleInspector         = "inspector"
	RoleInsuranceAdjuster = "insurance-adjuster"
)

// ProjectInput is the form-derived description of the property and project.
// It is immutable once submitted for report generation.
type ProjectInput struct {
	UserRole    string `json:"userRole" validate:"required"`
	ProjectName string `json:"projectName"`
	ClientName  string `json:"clientName"`

	ProjectType  string  `json:"projectType" validate:"required"`
	AreaSqFt     float64 `json:"areaSqFt" validate:"required,gt=0"`
	MaterialTier string  `json:"materialTier" validate:"required"`
	Location     string  `json:"location"`
	Timeline     string  `json:"timeline"`

	RoofAgeYears    int    `json:"roofAgeYears"`
	MaterialLayers  int    `json:"materialLayers"`
	CurrentMaterial string `json:"currentMaterial"`

	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`

	PreferredLanguage string `json:"preferredLanguage"`
	PreferredCurrency string `json:"preferredCurrency"`

	// Photos carries base64-encoded site photos embedded in the report.
	Photos []string `json:"photos"`

	Homeowner  *HomeownerInput  `json:"homeowner"`
	Contractor *ContractorInput `json:"contractor"`
	Inspector  *InspectorInput  `json:"inspector"`
	Adjuster   *AdjusterInput   `json:"adjuster"`
}

// HomeownerInput holds the budget details a homeowner fills in.
type HomeownerInput struct {
	BudgetRange     string `json:"budgetRange"`
	FinancingNeeded bool   `json:"financingNeeded"`
	PrimaryConcern  string `json:"primaryConcern"`
	OccupancyStatus string `json:"occupancyStatus"`
}

// ContractorInput holds the job details a contractor fills in.
type ContractorInput struct {
	CompanyName   string `json:"companyName"`
	LicenseNumber string `json:"licenseNumber"`
	CrewSize      int    `json:"crewSize"`
	PlannedStart  string `json:"plannedStart"`
	BidDeadline   string `json:"bidDeadline"`
}

// InspectorInput holds the license details an inspector fills in.
type InspectorInput struct {
	LicenseNumber     string `json:"licenseNumber"`
	CertificationBody string `json:"certificationBody"`
	InspectionDate    string `json:"inspectionDate"`
	InspectionType    string `json:"inspectionType"`
}

// AdjusterInput holds the claim details an insurance adjuster fills in.
type AdjusterInput struct {
	ClaimNumber  string `json:"claimNumber"`
	PolicyNumber string `json:"policyNumber"`
	InsuredName  string `json:"insuredName"`
	DateOfLoss   string `json:"dateOfLoss"`
	CauseOfLoss  string `json:"causeOfLoss"`
	Deductible   string `json:"deductible"`
}

// AIReportPayload is the optional externally sourced analysis. Every field
// is optional and consumers tolerate its complete absence.
type AIReportPayload struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	NextSteps       []string `json:"nextSteps"`

	Homeowner  *HomeownerPayload  `json:"homeowner"`
	Contractor *ContractorPayload `json:"contractor"`
	Inspector  *InspectorPayload  `json:"inspector"`
	Adjuster   *AdjusterPayload   `json:"adjuster"`

	// Raw preserves the verbatim upstream response for the persisted
	// metadata record.
	Raw json.RawMessage `json:"-"`
}

// HomeownerPayload carries the homeowner-facing analysis.
type HomeownerPayload struct {
	LifespanEstimate string   `json:"lifespanEstimate"`
	MaintenanceTips  []string `json:"maintenanceTips"`
	EnergyNotes      string   `json:"energyNotes"`
}

// ContractorPayload carries the contractor-facing analysis.
type ContractorPayload struct {
	ScopeOfWork    []string        `json:"scopeOfWork"`
	TimelinePhases []TimelinePhase `json:"timelinePhases"`
	SafetyNotes    []string        `json:"safetyNotes"`
}

// TimelinePhase is one row of the contractor phase schedule.
type TimelinePhase struct {
	Phase    string `json:"phase"`
	Duration string `json:"duration"`
	Crew     string `json:"crew"`
	Notes    string `json:"notes"`
}

// InspectorPayload carries the inspector-facing analysis.
type InspectorPayload struct {
	OverallCondition string   `json:"overallCondition"`
	Findings         []string `json:"findings"`
	CodeCompliance   []string `json:"codeCompliance"`
}

// AdjusterPayload carries the insurance-adjuster-facing analysis.
type AdjusterPayload struct {
	ClaimSummary    string      `json:"claimSummary"`
	DamageRows      []DamageRow `json:"damageRows"`
	CoverageNotes   []string    `json:"coverageNotes"`
	RepairVsReplace string      `json:"repairVsReplace"`
}

// DamageRow is one observed damage classification. A row reaches the
// rendered table only when all four fields carry real values.
type DamageRow struct {
	Slope       string `json:"slope"`
	DamageType  string `json:"damageType"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// GenerateReportRequest is the POST /reports body: the project form plus an
// optional pre-fetched AI payload. When the payload is absent and the AI
// client is configured, the service fetches one itself.
type GenerateReportRequest struct {
	Project ProjectInput     `json:"project" validate:"required"`
	AI      *AIReportPayload `json:"ai"`
}

// GenerateReportResponse returns the generated document's identity and
// metadata. DocumentID is nil when the caller was anonymous and nothing
// was persisted.
type GenerateReportResponse struct {
	DocumentID  *uuid.UUID                      `json:"documentId"`
	FileName    string                          `json:"fileName"`
	FileSize    int64                           `json:"fileSize"`
	PageCount   int                             `json:"pageCount"`
	GeneratedAt time.Time                       `json:"generatedAt"`
	Persisted   bool                            `json:"persisted"`
	Estimate    estimatetransport.CostBreakdown `json:"estimate"`
	PDFBase64   string                          `json:"pdfBase64"`
}

// ReportSummary is one row in the caller's report list.
type ReportSummary struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	ProjectType string    `json:"projectType"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ReportDetail is the persisted record without the blob.
type ReportDetail struct {
	ID          uuid.UUID       `json:"id"`
	FileName    string          `json:"fileName"`
	FileSize    int64           `json:"fileSize"`
	ProjectType string          `json:"projectType"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Metadata    json.RawMessage `json:"metadata"`
}

// ListReportsResponse is the paginated list envelope.
type ListReportsResponse struct {
	Items      []ReportSummary `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

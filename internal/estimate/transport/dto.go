package transport

// ── Requests ──────────────────────────────────────────────────────────────────

// EstimateRequest is the input for a cost estimate.
type EstimateRequest struct {
	ProjectType  string  `json:"projectType" validate:"required"`
	AreaSqFt     float64 `json:"areaSqFt" validate:"required,gt=0"`
	MaterialTier string  `json:"materialTier" validate:"required"`
	Location     string  `json:"location"`
	Timeline     string  `json:"timeline"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// CostBreakdown is the computed estimate. Every component is rounded to whole
// currency units before summing, so TotalCost is always the exact sum of the
// four components.
type CostBreakdown struct {
	MaterialsCost    int64   `json:"materialsCost"`
	LaborCost        int64   `json:"laborCost"`
	PermitsCost      int64   `json:"permitsCost"`
	ContingencyCost  int64   `json:"contingencyCost"`
	TotalCost        int64   `json:"totalCost"`
	RegionMultiplier float64 `json:"regionMultiplier"`
	Region           string  `json:"region"`
}

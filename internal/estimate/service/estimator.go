package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"roofscope_backend/internal/estimate/transport"
	"roofscope_backend/platform/apperr"
)

const contingencyRate = 0.07

// Service computes cost breakdowns from a price source.
type Service struct {
	prices PriceSource
}

// New creates an estimator backed by the given price source.
// A nil source uses the static table.
func New(prices PriceSource) *Service {
	if prices == nil {
		prices = StaticSource{}
	}
	return &Service{prices: prices}
}

// roundUnit rounds a cost to the nearest whole currency unit.
func roundUnit(v float64) int64 {
	return int64(math.Round(v))
}

// resolveRegion finds the first region whose key is a substring of the
// location, case-insensitively. Unmatched locations use the default 1.0.
func resolveRegion(location string) (string, float64) {
	loc := strings.ToLower(location)
	for _, entry := range regionMultipliers {
		if strings.Contains(loc, entry.Key) {
			return entry.Key, entry.Multiplier
		}
	}
	return defaultRegion, 1.0
}

// Estimate computes a CostBreakdown for the request. Unknown projectType,
// materialTier, or timeline values are rejected at this boundary rather than
// silently degrading the arithmetic. Each component is rounded before
// summing; contingency is computed from the rounded components.
func (s *Service) Estimate(ctx context.Context, req transport.EstimateRequest) (transport.CostBreakdown, error) {
	var zero transport.CostBreakdown

	if req.AreaSqFt <= 0 {
		return zero, apperr.Validation("areaSqFt must be greater than zero").WithOp("estimate")
	}

	rates, err := s.prices.Rates(ctx)
	if err != nil {
		return zero, apperr.Wrap(apperr.KindInternal, "price source failed", err).WithOp("estimate")
	}

	rate, ok := rates[req.ProjectType]
	if !ok {
		return zero, apperr.Validation(fmt.Sprintf("unknown project type %q", req.ProjectType)).WithOp("estimate")
	}

	tierMult, ok := tierMultipliers[req.MaterialTier]
	if !ok {
		return zero, apperr.Validation(fmt.Sprintf("unknown material tier %q", req.MaterialTier)).WithOp("estimate")
	}

	timelineMult := 1.0
	if req.Timeline != "" {
		timelineMult, ok = timelineMultipliers[req.Timeline]
		if !ok {
			return zero, apperr.Validation(fmt.Sprintf("unknown timeline %q", req.Timeline)).WithOp("estimate")
		}
	}

	region, regionMult := resolveRegion(req.Location)

	materials := roundUnit(req.AreaSqFt * rate.MaterialRate * tierMult * regionMult * timelineMult)
	labor := roundUnit(req.AreaSqFt * rate.LaborRate * regionMult * timelineMult)
	permits := roundUnit(req.AreaSqFt * rate.PermitRate * regionMult)
	contingency := roundUnit(contingencyRate * float64(materials+labor+permits))

	return transport.CostBreakdown{
		MaterialsCost:    materials,
		LaborCost:        labor,
		PermitsCost:      permits,
		ContingencyCost:  contingency,
		TotalCost:        materials + labor + permits + contingency,
		RegionMultiplier: regionMult,
		Region:           region,
	}, nil
}

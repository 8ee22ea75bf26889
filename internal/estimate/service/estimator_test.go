package service

import (
	"context"
	"testing"

	"roofscope_backend/internal/estimate/transport"
	"roofscope_backend/platform/apperr"
)

func TestEstimate_AustinResidentialScenario(t *testing.T) {
	svc := New(nil)

	result, err := svc.Estimate(context.Background(), transport.EstimateRequest{
		ProjectType:  "residential",
		AreaSqFt:     1200,
		MaterialTier: "standard",
		Location:     "Austin, TX",
		Timeline:     "standard",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RegionMultiplier != 1.15 {
		t.Fatalf("expected region multiplier 1.15, got %v", result.RegionMultiplier)
	}
	if result.Region != "austin" {
		t.Fatalf("expected region austin, got %q", result.Region)
	}
	// 1200 × 85 × 1.0 × 1.15 × 1.0
	if result.MaterialsCost != 117300 {
		t.Fatalf("expected materials 117300, got %d", result.MaterialsCost)
	}
	// 1200 × 55 × 1.15
	if result.LaborCost != 75900 {
		t.Fatalf("expected labor 75900, got %d", result.LaborCost)
	}
	// 1200 × 8 × 1.15
	if result.PermitsCost != 11040 {
		t.Fatalf("expected permits 11040, got %d", result.PermitsCost)
	}
	// round(0.07 × 204240)
	if result.ContingencyCost != 14297 {
		t.Fatalf("expected contingency 14297, got %d", result.ContingencyCost)
	}
	if result.TotalCost != 218537 {
		t.Fatalf("expected total 218537, got %d", result.TotalCost)
	}
}

func TestEstimate_TotalIsExactSumOfComponents(t *testing.T) {
	svc := New(nil)

	requests := []transport.EstimateRequest{
		{ProjectType: "residential", AreaSqFt: 973.5, MaterialTier: "economy", Location: "Chicago", Timeline: "urgent"},
		{ProjectType: "commercial", AreaSqFt: 18000, MaterialTier: "premium", Location: "nowhere in particular"},
		{ProjectType: "industrial", AreaSqFt: 1, MaterialTier: "standard", Location: "San Francisco", Timeline: "flexible"},
		{ProjectType: "agricultural", AreaSqFt: 42500.25, MaterialTier: "premium", Location: "miami beach", Timeline: "standard"},
	}

	for _, req := range requests {
		result, err := svc.Estimate(context.Background(), req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", req.ProjectType, err)
		}
		sum := result.MaterialsCost + result.LaborCost + result.PermitsCost + result.ContingencyCost
		if result.TotalCost != sum {
			t.Fatalf("%s: total %d != component sum %d", req.ProjectType, result.TotalCost, sum)
		}
	}
}

func TestEstimate_IsPure(t *testing.T) {
	svc := New(nil)
	req := transport.EstimateRequest{
		ProjectType:  "commercial",
		AreaSqFt:     3300,
		MaterialTier: "premium",
		Location:     "Denver",
		Timeline:     "flexible",
	}

	first, err := svc.Estimate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Estimate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("estimate not deterministic: %+v vs %+v", first, second)
	}
}

func TestEstimate_UnknownLocationUsesDefaultMultiplier(t *testing.T) {
	svc := New(nil)

	result, err := svc.Estimate(context.Background(), transport.EstimateRequest{
		ProjectType:  "residential",
		AreaSqFt:     100,
		MaterialTier: "standard",
		Location:     "Smallville",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RegionMultiplier != 1.0 || result.Region != "default" {
		t.Fatalf("expected default region 1.0, got %q %v", result.Region, result.RegionMultiplier)
	}
}

func TestEstimate_RegionMatchIsOrderDeterministic(t *testing.T) {
	// "San Antonio" contains both "san antonio" and no earlier key;
	// a location containing two keys resolves to the earliest declared one.
	svc := New(nil)

	result, err := svc.Estimate(context.Background(), transport.EstimateRequest{
		ProjectType:  "residential",
		AreaSqFt:     100,
		MaterialTier: "standard",
		Location:     "between Austin and San Antonio",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Region != "austin" {
		t.Fatalf("expected first declared match austin, got %q", result.Region)
	}
}

func TestEstimate_RejectsUnknownEnums(t *testing.T) {
	svc := New(nil)

	cases := []transport.EstimateRequest{
		{ProjectType: "castle", AreaSqFt: 100, MaterialTier: "standard"},
		{ProjectType: "residential", AreaSqFt: 100, MaterialTier: "luxury"},
		{ProjectType: "residential", AreaSqFt: 100, MaterialTier: "standard", Timeline: "yesterday"},
		{ProjectType: "residential", AreaSqFt: 0, MaterialTier: "standard"},
		{ProjectType: "residential", AreaSqFt: -5, MaterialTier: "standard"},
	}

	for i, req := range cases {
		_, err := svc.Estimate(context.Background(), req)
		if err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("case %d: expected validation kind, got %v", i, err)
		}
	}
}

func TestEstimate_EmptyTimelineDefaultsToOne(t *testing.T) {
	svc := New(nil)

	withEmpty, err := svc.Estimate(context.Background(), transport.EstimateRequest{
		ProjectType: "residential", AreaSqFt: 800, MaterialTier: "standard", Location: "Dallas",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withStandard, err := svc.Estimate(context.Background(), transport.EstimateRequest{
		ProjectType: "residential", AreaSqFt: 800, MaterialTier: "standard", Location: "Dallas", Timeline: "standard",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withEmpty != withStandard {
		t.Fatalf("empty timeline should equal standard: %+v vs %+v", withEmpty, withStandard)
	}
}

package service

// BaseRate holds per-square-foot rates for one project type.
type BaseRate struct {
	MaterialRate float64
	LaborRate    float64
	PermitRate   float64
}

// baseRates is the static pricing table. A live feed, when configured,
// overrides these values but always falls back here on failure.
var baseRates = map[string]BaseRate{
	"residential":  {MaterialRate: 85, LaborRate: 55, PermitRate: 8},
	"commercial":   {MaterialRate: 95, LaborRate: 65, PermitRate: 12},
	"industrial":   {MaterialRate: 110, LaborRate: 75, PermitRate: 15},
	"agricultural": {MaterialRate: 70, LaborRate: 45, PermitRate: 6},
}

var tierMultipliers = map[string]float64{
	"economy":  0.7,
	"standard": 1.0,
	"premium":  1.35,
}

// Empty timeline means no preference and multiplies by 1.0.
var timelineMultipliers = map[string]float64{
	"urgent":   1.25,
	"standard": 1.0,
	"flexible": 0.92,
}

// regionEntry pairs a metro substring key with its cost multiplier.
type regionEntry struct {
	Key        string
	Multiplier float64
}

// regionMultipliers is matched by case-insensitive substring against the
// location, in declared order; the first match wins. The order is part of the
// contract: it replaces the accidental object-key-order tie-break of the
// original lookup with an explicit rule.
var regionMultipliers = []regionEntry{
	{"austin", 1.15},
	{"dallas", 1.12},
	{"houston", 1.10},
	{"san antonio", 1.05},
	{"phoenix", 1.08},
	{"atlanta", 1.12},
	{"miami", 1.20},
	{"chicago", 1.25},
	{"denver", 1.18},
	{"seattle", 1.30},
	{"portland", 1.22},
	{"boston", 1.38},
	{"new york", 1.45},
	{"los angeles", 1.40},
	{"san francisco", 1.50},
}

const defaultRegion = "default"

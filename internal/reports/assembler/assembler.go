// Package assembler builds the role-specific report structure that the
// renderer consumes. Each role assembler merges the optional AI analysis
// payload with values derived from the project form, layer by layer, down to
// literal placeholder strings. Every leaf that reaches the renderer is a
// resolved string, never empty and never nil.
package assembler

import (
	"strings"

	"roofscope_backend/platform/apperr"

	estimatetransport "roofscope_backend/internal/estimate/transport"
	"roofscope_backend/internal/reports/transport"
)

// Sentinel placeholders for absent data. They stay literal English in every
// language: downstream filters key on them as data markers, not labels.
const (
	NotSpecified = "Not specified"
	NotProvided  = "Not provided"
)

// Input bundles everything an assembler resolves from.
type Input struct {
	Project  transport.ProjectInput
	Estimate estimatetransport.CostBreakdown
	AI       *transport.AIReportPayload

	// Language and Currency are the normalized preferences applied to all
	// labels and money values.
	Language string
	Currency string
}

// Report is the fully resolved, renderer-ready structure for one role.
type Report struct {
	Role        string
	Title       string
	PreparedFor string
	Language    string
	Currency    string
	Sections    []Section
	// Photos carries the decoded site photo bytes, rendered after the body.
	Photos [][]byte
}

// Section is one rendered block of the report body. A section renders its
// non-empty parts in order: fields, paragraphs, table.
type Section struct {
	Title      string
	Paragraphs []string
	Fields     []Field
	Table      *Table
}

// Field is a resolved label/value pair.
type Field struct {
	Label string
	Value string
}

// Table is a resolved header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Assemble dispatches to the role assembler. An unrecognized role is a
// validation error rather than a silently role-less document.
func Assemble(in Input) (Report, error) {
	switch in.Project.UserRole {
	case transport.RoleHomeowner:
		return assembleHomeowner(in), nil
	case transport.RoleContractor:
		return assembleContractor(in), nil
	case transport.RoleInspector:
		return assembleInspector(in), nil
	case transport.RoleInsuranceAdjuster:
		return assembleAdjuster(in), nil
	default:
		return Report{}, apperr.Validation("unknown report role: " + in.Project.UserRole)
	}
}

// fallback resolves the primary value when it carries real content,
// otherwise the fallback value. Sentinels count as absent in the primary.
func fallback(primary, alt string) string {
	v := strings.TrimSpace(primary)
	if v == "" || v == NotSpecified || v == NotProvided {
		return alt
	}
	return v
}

// fallbackList resolves the primary slice when it has any real entry,
// otherwise the fallback slice. Blank and sentinel entries are dropped.
func fallbackList(primary, alt []string) []string {
	cleaned := make([]string, 0, len(primary))
	for _, v := range primary {
		if t := strings.TrimSpace(v); t != "" && t != NotSpecified && t != NotProvided {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) > 0 {
		return cleaned
	}
	return alt
}

// present reports whether a value carries real content.
func present(v string) bool {
	t := strings.TrimSpace(v)
	return t != "" && t != NotSpecified && t != NotProvided
}

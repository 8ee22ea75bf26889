package assembler

import (
	"roofscope_backend/internal/i18n"
	"roofscope_backend/internal/reports/transport"
)

func assembleAdjuster(in Input) Report {
	r := newReport(in)
	r.Sections = append(r.Sections, overviewSection(in), claimSection(in), costSection(in))

	summary := aiSummary(in)
	if in.AI != nil && in.AI.Adjuster != nil && present(in.AI.Adjuster.ClaimSummary) {
		summary = in.AI.Adjuster.ClaimSummary
	}
	if summary != "" {
		r.Sections = append(r.Sections, Section{
			Title:      i18n.Text("claim_summary", in.Language),
			Paragraphs: []string{summary},
		})
	}

	// The damage table carries only fully populated rows. When every row is
	// filtered out the whole section, header included, is omitted.
	if in.AI != nil && in.AI.Adjuster != nil {
		if rows := filterDamageRows(in.AI.Adjuster.DamageRows); len(rows) > 0 {
			r.Sections = append(r.Sections, Section{
				Title: i18n.Text("damage_classifications", in.Language),
				Table: &Table{
					Headers: []string{
						i18n.Text("slope", in.Language),
						i18n.Text("damage_type", in.Language),
						i18n.Text("severity", in.Language),
						i18n.Text("description", in.Language),
					},
					Rows: rows,
				},
			})
		}

		coverage := Section{Title: i18n.Text("coverage_analysis", in.Language)}
		if present(in.AI.Adjuster.RepairVsReplace) {
			coverage.Fields = append(coverage.Fields,
				Field{i18n.Text("repair_vs_replace", in.Language), in.AI.Adjuster.RepairVsReplace})
		}
		for _, n := range fallbackList(in.AI.Adjuster.CoverageNotes, nil) {
			coverage.Paragraphs = append(coverage.Paragraphs, "• "+n)
		}
		if len(coverage.Fields) > 0 || len(coverage.Paragraphs) > 0 {
			r.Sections = append(r.Sections, coverage)
		}
	}

	r.Sections = append(r.Sections, closingSections(in,
		[]string{
			"Cross-check the damage observations against the date-of-loss weather record.",
			"Obtain matching-material documentation before approving partial replacement.",
		},
		[]string{
			"Issue the coverage determination to the policyholder.",
			"Schedule a re-inspection if supplemental damage is claimed.",
		})...)
	return r
}

// filterDamageRows keeps only rows where all four of slope, damage type,
// severity, and description carry real, non-sentinel values.
func filterDamageRows(rows []transport.DamageRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !present(row.Slope) || !present(row.DamageType) || !present(row.Severity) || !present(row.Description) {
			continue
		}
		out = append(out, []string{row.Slope, row.DamageType, row.Severity, row.Description})
	}
	return out
}

func claimSection(in Input) Section {
	s := Section{Title: i18n.Text("claim_information", in.Language)}
	a := in.Project.Adjuster
	if a == nil {
		s.Fields = []Field{
			{i18n.Text("claim_number", in.Language), NotProvided},
			{i18n.Text("policy_number", in.Language), NotProvided},
		}
		return s
	}
	s.Fields = []Field{
		{i18n.Text("claim_number", in.Language), fallback(a.ClaimNumber, NotProvided)},
		{i18n.Text("policy_number", in.Language), fallback(a.PolicyNumber, NotProvided)},
		{i18n.Text("insured_name", in.Language), fallback(a.InsuredName, NotProvided)},
		{i18n.Text("date_of_loss", in.Language), fallback(a.DateOfLoss, NotSpecified)},
		{i18n.Text("cause_of_loss", in.Language), fallback(a.CauseOfLoss, NotSpecified)},
	}
	if present(a.Deductible) {
		s.Fields = append(s.Fields, Field{i18n.Text("deductible", in.Language), a.Deductible})
	}
	return s
}

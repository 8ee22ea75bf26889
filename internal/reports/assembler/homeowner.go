package assembler

import (
	"roofscope_backend/internal/i18n"
)

// glossaryTerms is the fixed reference content every homeowner report
// carries verbatim, regardless of input.
var glossaryTerms = [][2]string{
	{"Decking", "The structural wood surface, usually plywood or OSB, that the roofing system is fastened to."},
	{"Underlayment", "A water-resistant membrane installed between the decking and the shingles as a secondary barrier."},
	{"Flashing", "Metal pieces sealing joints and transitions such as chimneys, valleys, and wall intersections."},
	{"Drip Edge", "Metal strip along roof edges that directs runoff away from the fascia and into the gutters."},
	{"Ridge Vent", "A ventilation opening along the roof peak that lets warm, moist air escape the attic."},
	{"Soffit", "The finished underside of the roof overhang, often perforated to draw in ventilation air."},
	{"Fascia", "The vertical board along the roof edge where gutters are mounted."},
	{"Valley", "The internal angle where two roof slopes meet and channel the heaviest water flow."},
	{"Square", "The roofing unit of measure equal to 100 square feet of roof surface."},
	{"Granules", "The mineral surface of asphalt shingles; loss of granules is an early sign of wear."},
}

func assembleHomeowner(in Input) Report {
	r := newReport(in)
	r.Sections = append(r.Sections, overviewSection(in), costSection(in), budgetSection(in))

	if summary := aiSummary(in); summary != "" {
		r.Sections = append(r.Sections, Section{
			Title:      i18n.Text("inspection_findings", in.Language),
			Paragraphs: []string{summary},
		})
	}

	if in.AI != nil && in.AI.Homeowner != nil {
		h := in.AI.Homeowner
		maint := Section{Title: i18n.Text("maintenance_tips", in.Language)}
		if present(h.LifespanEstimate) {
			maint.Fields = []Field{{i18n.Text("estimated_lifespan", in.Language), h.LifespanEstimate}}
		}
		for _, tip := range fallbackList(h.MaintenanceTips, nil) {
			maint.Paragraphs = append(maint.Paragraphs, "• "+tip)
		}
		if len(maint.Fields) > 0 || len(maint.Paragraphs) > 0 {
			r.Sections = append(r.Sections, maint)
		}
		if present(h.EnergyNotes) {
			r.Sections = append(r.Sections, Section{
				Title:      i18n.Text("energy_efficiency", in.Language),
				Paragraphs: []string{h.EnergyNotes},
			})
		}
	}

	r.Sections = append(r.Sections, closingSections(in,
		[]string{
			"Collect at least three itemized bids before committing to a contractor.",
			"Confirm the contractor's license and insurance certificates are current.",
			"Ask how unexpected decking repairs are priced before work begins.",
		},
		[]string{
			"Review this estimate with your household and set a decision date.",
			"Schedule an on-site inspection to confirm the measured roof area.",
			"Check your homeowner policy for storm damage coverage before paying out of pocket.",
		})...)

	r.Sections = append(r.Sections, glossarySection(in.Language))
	return r
}

func budgetSection(in Input) Section {
	s := Section{Title: i18n.Text("budget_summary", in.Language)}
	h := in.Project.Homeowner
	if h == nil {
		s.Fields = []Field{
			{i18n.Text("budget_range", in.Language), NotSpecified},
			{i18n.Text("primary_concern", in.Language), NotSpecified},
		}
		return s
	}
	financing := "No"
	if h.FinancingNeeded {
		financing = "Yes"
	}
	s.Fields = []Field{
		{i18n.Text("budget_range", in.Language), fallback(h.BudgetRange, NotSpecified)},
		{i18n.Text("financing_needed", in.Language), financing},
		{i18n.Text("primary_concern", in.Language), fallback(h.PrimaryConcern, NotSpecified)},
	}
	return s
}

func glossarySection(lang string) Section {
	rows := make([][]string, 0, len(glossaryTerms))
	for _, t := range glossaryTerms {
		rows = append(rows, []string{t[0], t[1]})
	}
	return Section{
		Title: i18n.Text("glossary", lang),
		Table: &Table{
			Headers: []string{i18n.Text("term", lang), i18n.Text("definition", lang)},
			Rows:    rows,
		},
	}
}

package assembler

import (
	"fmt"

	"roofscope_backend/internal/i18n"
	"roofscope_backend/internal/reports/transport"
	"roofscope_backend/platform/phone"
)

func assembleContractor(in Input) Report {
	r := newReport(in)
	r.Sections = append(r.Sections, overviewSection(in), costSection(in), jobSection(in))

	if summary := aiSummary(in); summary != "" {
		r.Sections = append(r.Sections, Section{
			Title:      i18n.Text("scope_of_work", in.Language),
			Paragraphs: []string{summary},
		})
	}

	var cp *contractorAnalysis
	if in.AI != nil && in.AI.Contractor != nil {
		cp = &contractorAnalysis{
			scope:  in.AI.Contractor.ScopeOfWork,
			phases: in.AI.Contractor.TimelinePhases,
			safety: in.AI.Contractor.SafetyNotes,
		}
	}

	scope := fallbackList(scopeItems(cp), defaultScope(in))
	if s := listSection("scope_of_work", in.Language, scope); s != nil && aiSummary(in) == "" {
		r.Sections = append(r.Sections, *s)
	} else if s != nil {
		// AI summary already opened the scope narrative; keep the
		// itemized list under the same heading region.
		r.Sections = append(r.Sections, Section{Paragraphs: s.Paragraphs})
	}

	if t := phaseTable(cp, in.Language); t != nil {
		r.Sections = append(r.Sections, Section{
			Title: i18n.Text("project_timeline", in.Language),
			Table: t,
		})
	}

	if cp != nil {
		if s := listSection("safety_notes", in.Language, fallbackList(cp.safety, nil)); s != nil {
			r.Sections = append(r.Sections, *s)
		}
	}

	r.Sections = append(r.Sections, closingSections(in,
		[]string{
			"Verify decking condition during tear-off before finalizing the material order.",
			"Stage material delivery within two days of tear-off to limit exposure.",
			"Photograph flashing and underlayment work for the closeout package.",
		},
		[]string{
			"Submit the bid before the stated deadline.",
			"Confirm permit requirements with the local building department.",
			"Lock in crew and equipment availability for the planned start date.",
		})...)
	return r
}

type contractorAnalysis struct {
	scope  []string
	phases []transport.TimelinePhase
	safety []string
}

func scopeItems(cp *contractorAnalysis) []string {
	if cp == nil {
		return nil
	}
	return cp.scope
}

// defaultScope derives a minimal work scope from the form when the AI
// payload carries none.
func defaultScope(in Input) []string {
	p := in.Project
	area := fmt.Sprintf("%.0f", p.AreaSqFt)
	scope := []string{
		"Tear off existing roofing down to the decking across " + area + " sq ft.",
		"Install new underlayment, drip edge, and flashing throughout.",
		"Install " + fallback(p.MaterialTier, "standard") + " tier roofing material per manufacturer spec.",
		"Haul away all debris and magnetic-sweep the grounds.",
	}
	if p.MaterialLayers > 1 {
		scope = append(scope, fmt.Sprintf("Remove %d existing material layers.", p.MaterialLayers))
	}
	return scope
}

func jobSection(in Input) Section {
	s := Section{Title: i18n.Text("job_details", in.Language)}
	c := in.Project.Contractor
	if c == nil {
		s.Fields = []Field{
			{i18n.Text("company", in.Language), NotProvided},
			{i18n.Text("license_number", in.Language), NotProvided},
		}
		return s
	}
	s.Fields = []Field{
		{i18n.Text("company", in.Language), fallback(c.CompanyName, NotProvided)},
		{i18n.Text("license_number", in.Language), fallback(c.LicenseNumber, NotProvided)},
	}
	if c.CrewSize > 0 {
		s.Fields = append(s.Fields, Field{i18n.Text("crew_size", in.Language), fmt.Sprintf("%d", c.CrewSize)})
	}
	if present(c.PlannedStart) {
		s.Fields = append(s.Fields, Field{i18n.Text("planned_start", in.Language), c.PlannedStart})
	}
	if present(c.BidDeadline) {
		s.Fields = append(s.Fields, Field{i18n.Text("bid_deadline", in.Language), c.BidDeadline})
	}
	if contact := contactLine(in); contact != "" {
		s.Fields = append(s.Fields, Field{i18n.Text("contact", in.Language), contact})
	}
	return s
}

// contactLine formats the submitter's contact details, normalizing the phone
// number to E.164 when it parses.
func contactLine(in Input) string {
	p := in.Project
	phoneStr := phone.NormalizeE164(p.ContactPhone)
	switch {
	case present(p.ContactEmail) && present(phoneStr):
		return p.ContactEmail + " / " + phoneStr
	case present(p.ContactEmail):
		return p.ContactEmail
	case present(phoneStr):
		return phoneStr
	default:
		return ""
	}
}

// phaseTable builds the four-column phase schedule; nil when no phase has
// real content.
func phaseTable(cp *contractorAnalysis, lang string) *Table {
	if cp == nil {
		return nil
	}
	rows := make([][]string, 0, len(cp.phases))
	for _, ph := range cp.phases {
		if !present(ph.Phase) {
			continue
		}
		rows = append(rows, []string{
			ph.Phase,
			fallback(ph.Duration, NotSpecified),
			fallback(ph.Crew, NotSpecified),
			fallback(ph.Notes, ""),
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return &Table{
		Headers: []string{
			i18n.Text("phase", lang),
			i18n.Text("duration", lang),
			i18n.Text("crew", lang),
			i18n.Text("notes", lang),
		},
		Rows: rows,
	}
}

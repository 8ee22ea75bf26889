package assembler

import (
	"roofscope_backend/internal/i18n"
)

func assembleInspector(in Input) Report {
	r := newReport(in)
	r.Sections = append(r.Sections, overviewSection(in), licenseSection(in), costSection(in))

	findings := Section{Title: i18n.Text("inspection_findings", in.Language)}
	if summary := aiSummary(in); summary != "" {
		findings.Paragraphs = append(findings.Paragraphs, summary)
	}

	var condition string
	var findingItems, compliance []string
	if in.AI != nil && in.AI.Inspector != nil {
		condition = in.AI.Inspector.OverallCondition
		findingItems = in.AI.Inspector.Findings
		compliance = in.AI.Inspector.CodeCompliance
	}

	if present(condition) {
		findings.Fields = append(findings.Fields, Field{i18n.Text("overall_condition", in.Language), condition})
	}
	for _, f := range fallbackList(findingItems, defaultFindings(in)) {
		findings.Paragraphs = append(findings.Paragraphs, "• "+f)
	}
	r.Sections = append(r.Sections, findings)

	if s := listSection("code_compliance", in.Language, fallbackList(compliance, nil)); s != nil {
		r.Sections = append(r.Sections, *s)
	}

	r.Sections = append(r.Sections, closingSections(in,
		[]string{
			"Document all observations with dated photographs before any repair work starts.",
			"Re-inspect flashing and penetrations after the next heavy rain event.",
		},
		[]string{
			"Deliver this report to the property owner of record.",
			"File the inspection with the certifying body where required.",
		})...)
	return r
}

// defaultFindings derives baseline observations from the form when the AI
// payload carries none.
func defaultFindings(in Input) []string {
	p := in.Project
	findings := []string{
		"Visual inspection of " + fallback(p.ProjectType, "the") + " roof structure completed.",
	}
	if p.RoofAgeYears >= 20 {
		findings = append(findings, "Roof age exceeds typical asphalt service life; replacement rather than repair is indicated.")
	} else if p.RoofAgeYears > 0 {
		findings = append(findings, "Roof is within expected service life for its reported age.")
	}
	if p.MaterialLayers > 1 {
		findings = append(findings, "Multiple existing material layers present; full tear-off required under most building codes.")
	}
	return findings
}

func licenseSection(in Input) Section {
	s := Section{Title: i18n.Text("license_information", in.Language)}
	ins := in.Project.Inspector
	if ins == nil {
		s.Fields = []Field{
			{i18n.Text("license_number", in.Language), NotProvided},
			{i18n.Text("certification_body", in.Language), NotProvided},
		}
		return s
	}
	s.Fields = []Field{
		{i18n.Text("license_number", in.Language), fallback(ins.LicenseNumber, NotProvided)},
		{i18n.Text("certification_body", in.Language), fallback(ins.CertificationBody, NotProvided)},
		{i18n.Text("inspection_date", in.Language), fallback(ins.InspectionDate, NotSpecified)},
		{i18n.Text("inspection_type", in.Language), fallback(ins.InspectionType, NotSpecified)},
	}
	if contact := contactLine(in); contact != "" {
		s.Fields = append(s.Fields, Field{i18n.Text("contact", in.Language), contact})
	}
	return s
}

package assembler

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"roofscope_backend/internal/i18n"
)

// newReport builds the envelope shared by every role, with the overview and
// cost sections that open each report body.
func newReport(in Input) Report {
	return Report{
		Role:        in.Project.UserRole,
		Title:       i18n.Text("report_title", in.Language),
		PreparedFor: fallback(in.Project.ClientName, NotProvided),
		Language:    in.Language,
		Currency:    in.Currency,
		Photos:      DecodePhotos(in.Project.Photos),
	}
}

// overviewSection lists the form facts every role report opens with.
func overviewSection(in Input) Section {
	p := in.Project
	fields := []Field{
		{i18n.Text("project_type", in.Language), fallback(p.ProjectType, NotSpecified)},
		{i18n.Text("location", in.Language), fallback(p.Location, NotSpecified)},
		{i18n.Text("roof_area", in.Language), fmt.Sprintf("%s sq ft", strconv.FormatFloat(p.AreaSqFt, 'f', -1, 64))},
		{i18n.Text("material_tier", in.Language), fallback(p.MaterialTier, NotSpecified)},
		{i18n.Text("timeline", in.Language), fallback(p.Timeline, NotSpecified)},
	}
	if p.RoofAgeYears > 0 {
		fields = append(fields, Field{i18n.Text("roof_age", in.Language), fmt.Sprintf("%d years", p.RoofAgeYears)})
	}
	if present(p.CurrentMaterial) {
		fields = append(fields, Field{i18n.Text("current_material", in.Language), p.CurrentMaterial})
	}
	return Section{
		Title:  i18n.Text("project_overview", in.Language),
		Fields: fields,
	}
}

// costSection renders the estimate as a headline total plus the four-column
// breakdown table.
func costSection(in Input) Section {
	e := in.Estimate
	money := func(v int64) string { return i18n.FormatMoney(v, in.Currency, in.Language) }
	share := func(v int64) string {
		if e.TotalCost == 0 {
			return "0%"
		}
		return fmt.Sprintf("%d%%", int((float64(v)/float64(e.TotalCost))*100+0.5))
	}

	headers := []string{
		i18n.Text("item", in.Language),
		i18n.Text("amount", in.Language),
		i18n.Text("share", in.Language),
		i18n.Text("notes", in.Language),
	}
	rows := [][]string{
		{i18n.Text("materials", in.Language), money(e.MaterialsCost), share(e.MaterialsCost), fallback(in.Project.MaterialTier, NotSpecified)},
		{i18n.Text("labor", in.Language), money(e.LaborCost), share(e.LaborCost), fallback(in.Project.Timeline, "standard")},
		{i18n.Text("permits", in.Language), money(e.PermitsCost), share(e.PermitsCost), e.Region},
		{i18n.Text("contingency", in.Language), money(e.ContingencyCost), share(e.ContingencyCost), "7%"},
	}

	return Section{
		Title: i18n.Text("estimated_project_cost", in.Language),
		Fields: []Field{
			{i18n.Text("total", in.Language), money(e.TotalCost)},
		},
		Table: &Table{Headers: headers, Rows: rows},
	}
}

// listSection renders a titled bullet-style list; nil when the list is empty.
func listSection(titleKey, lang string, items []string) *Section {
	if len(items) == 0 {
		return nil
	}
	paras := make([]string, 0, len(items))
	for _, it := range items {
		paras = append(paras, "• "+it)
	}
	return &Section{Title: i18n.Text(titleKey, lang), Paragraphs: paras}
}

// aiSummary returns the payload summary when present.
func aiSummary(in Input) string {
	if in.AI == nil {
		return ""
	}
	return strings.TrimSpace(in.AI.Summary)
}

// closingSections appends recommendations and next steps, preferring the AI
// payload and falling back to per-role static guidance.
func closingSections(in Input, recsDefault, stepsDefault []string) []Section {
	var recs, steps []string
	if in.AI != nil {
		recs = in.AI.Recommendations
		steps = in.AI.NextSteps
	}
	out := make([]Section, 0, 2)
	if s := listSection("recommendations", in.Language, fallbackList(recs, recsDefault)); s != nil {
		out = append(out, *s)
	}
	if s := listSection("next_steps", in.Language, fallbackList(steps, stepsDefault)); s != nil {
		out = append(out, *s)
	}
	return out
}

// DecodePhotos converts base64 form photos to raw bytes. A photo that fails
// to decode stays in the slice as nil so the renderer draws its placeholder
// instead of dropping the slot.
func DecodePhotos(encoded []string) [][]byte {
	if len(encoded) == 0 {
		return nil
	}
	photos := make([][]byte, 0, len(encoded))
	for _, p := range encoded {
		p = stripDataURLPrefix(p)
		raw, err := base64.StdEncoding.DecodeString(p)
		if err != nil {
			photos = append(photos, nil)
			continue
		}
		photos = append(photos, raw)
	}
	return photos
}

func stripDataURLPrefix(s string) string {
	if i := strings.Index(s, ";base64,"); i >= 0 {
		return s[i+len(";base64,"):]
	}
	return s
}

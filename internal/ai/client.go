// Package ai wraps the Gemini API behind a best-effort analysis client. A
// failed or misshapen response returns an error and the report pipeline
// proceeds on form-derived fallbacks; AI output enriches a report, it never
// gates one.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"roofscope_backend/internal/reports/transport"
)

const defaultModel = "gemini-2.0-flash"

// Client produces role-shaped analysis payloads from project input.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds the Gemini client. Returns nil without error when no API
// key is configured so callers can treat AI analysis as disabled.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = defaultModel
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{client: gc, model: model}, nil
}

// Analyze requests a structured payload for the project's role. Photos ride
// along as inline image parts when present.
func (c *Client) Analyze(ctx context.Context, input transport.ProjectInput, photos [][]byte) (*transport.AIReportPayload, error) {
	parts := make([]*genai.Part, 0, len(photos)+1)
	for _, p := range photos {
		if len(p) == 0 {
			continue
		}
		mime := http.DetectContentType(p)
		if !strings.HasPrefix(mime, "image/") {
			continue
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mime, Data: p},
		})
	}
	parts = append(parts, genai.NewPartFromText(buildPrompt(input)))

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   roleSchema(input.UserRole),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini analysis failed: %w", err)
	}

	raw := strings.TrimSpace(resp.Text())
	if raw == "" {
		return nil, fmt.Errorf("gemini returned an empty analysis")
	}

	var payload transport.AIReportPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode gemini analysis: %w", err)
	}
	payload.Raw = json.RawMessage(raw)
	return &payload, nil
}

func buildPrompt(input transport.ProjectInput) string {
	var b strings.Builder
	b.WriteString("You are a senior roofing analyst. Produce a structured analysis of this roofing project for a ")
	b.WriteString(input.UserRole)
	b.WriteString(" audience.\n\n")
	fmt.Fprintf(&b, "Project type: %s\n", input.ProjectType)
	fmt.Fprintf(&b, "Roof area: %.0f sq ft\n", input.AreaSqFt)
	fmt.Fprintf(&b, "Material tier: %s\n", input.MaterialTier)
	if input.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", input.Location)
	}
	if input.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\n", input.Timeline)
	}
	if input.RoofAgeYears > 0 {
		fmt.Fprintf(&b, "Roof age: %d years\n", input.RoofAgeYears)
	}
	if input.CurrentMaterial != "" {
		fmt.Fprintf(&b, "Current material: %s\n", input.CurrentMaterial)
	}
	b.WriteString("\nBase every statement on the stated facts and any attached photos. ")
	b.WriteString("Use plain language. Leave fields you cannot support empty rather than guessing.")
	return b.String()
}

// roleSchema returns the response schema for the role. The common summary,
// recommendations, and next-steps fields appear for every role; the nested
// role object carries the role-specific analysis.
func roleSchema(role string) *genai.Schema {
	props := map[string]*genai.Schema{
		"summary":         {Type: genai.TypeString},
		"recommendations": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"nextSteps":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	}

	switch role {
	case transport.RoleHomeowner:
		props["homeowner"] = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"lifespanEstimate": {Type: genai.TypeString},
				"maintenanceTips":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"energyNotes":      {Type: genai.TypeString},
			},
		}
	case transport.RoleContractor:
		props["contractor"] = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"scopeOfWork": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"timelinePhases": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"phase":    {Type: genai.TypeString},
							"duration": {Type: genai.TypeString},
							"crew":     {Type: genai.TypeString},
							"notes":    {Type: genai.TypeString},
						},
					},
				},
				"safetyNotes": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
		}
	case transport.RoleInspector:
		props["inspector"] = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"overallCondition": {Type: genai.TypeString},
				"findings":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"codeCompliance":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
		}
	case transport.RoleInsuranceAdjuster:
		props["adjuster"] = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"claimSummary": {Type: genai.TypeString},
				"damageRows": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"slope":       {Type: genai.TypeString},
							"damageType":  {Type: genai.TypeString},
							"severity":    {Type: genai.TypeString},
							"description": {Type: genai.TypeString},
						},
					},
				},
				"coverageNotes":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"repairVsReplace": {Type: genai.TypeString},
			},
		}
	}

	return &genai.Schema{Type: genai.TypeObject, Properties: props}
}

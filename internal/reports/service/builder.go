package service

import (
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"roofscope_backend/internal/i18n"
	"roofscope_backend/internal/render"
	"roofscope_backend/internal/reports/assembler"
	"roofscope_backend/internal/reports/transport"
)

const (
	photoWidth      = 150.0
	photoHeight     = 100.0
	fullWidthHeight = 120.0
	qrSize          = 45.0
	qrPixels        = 256
)

// buildDoc turns an assembled report into renderer draw commands: the cover
// block, each body section, the photo pages, and the closing branding page.
func buildDoc(report assembler.Report, viewURL string, generatedAt time.Time) *render.Doc {
	doc := render.NewDoc()

	doc.Section(report.Title)
	doc.Field(i18n.Text("prepared_for", report.Language), report.PreparedFor)
	doc.Field(i18n.Text("generated_on", report.Language), generatedAt.Format("January 2, 2006"))
	doc.Space(4)

	for _, s := range report.Sections {
		if s.Title != "" {
			doc.Section(s.Title)
		}
		for _, f := range s.Fields {
			doc.Field(f.Label, f.Value)
		}
		for _, p := range s.Paragraphs {
			doc.Text(p)
		}
		if s.Table != nil {
			doc.TableBlock(s.Table.Headers, s.Table.Rows)
		}
		doc.Space(3)
	}

	if len(report.Photos) > 0 {
		doc.NewPage()
		doc.Section(i18n.Text("site_photos", report.Language))
		alt := i18n.Text("image_unavailable", report.Language)
		fullWidth := report.Role == transport.RoleInspector || report.Role == transport.RoleInsuranceAdjuster
		for _, photo := range report.Photos {
			if fullWidth {
				doc.FullWidthPicture(photo, fullWidthHeight, alt)
			} else {
				doc.Picture(photo, photoWidth, photoHeight, alt)
			}
			doc.Space(4)
		}
	}

	appendBrandingPage(doc, report.Language, viewURL, generatedAt)
	return doc
}

// appendBrandingPage closes every document with the app branding, the
// generation timestamp, and a QR link to the hosted copy.
func appendBrandingPage(doc *render.Doc, lang, viewURL string, generatedAt time.Time) {
	doc.NewPage()
	doc.Space(60)
	doc.Section("RoofScope")
	doc.Text(i18n.Text("generated_on", lang) + " " + generatedAt.Format("January 2, 2006 15:04 MST"))
	doc.Space(8)

	if viewURL != "" {
		if png, err := qrcode.Encode(viewURL, qrcode.Medium, qrPixels); err == nil {
			doc.Picture(png, qrSize, qrSize, "")
			doc.Text(i18n.Text("scan_to_view", lang))
		}
	}
}

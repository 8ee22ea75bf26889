package render

import (
	"strings"
	"testing"
)

// assertInvariant checks that no placed block's bottom edge passes
// pageHeight − bottomMargin on any page.
func assertInvariant(t *testing.T, l Layouted) {
	t.Helper()
	limit := l.Geometry.PageHeight - l.Geometry.MarginBottom
	for pi, p := range l.Pages {
		for bi, b := range p.Blocks {
			if b.Y < l.Geometry.MarginTop {
				t.Fatalf("page %d block %d starts above top margin: y=%v", pi, bi, b.Y)
			}
			if b.Y+b.Height > limit+1e-9 {
				t.Fatalf("page %d block %d overflows: y=%v h=%v limit=%v", pi, bi, b.Y, b.Height, limit)
			}
		}
	}
}

func TestLayout_PageBreakInvariantForManyBlocks(t *testing.T) {
	doc := NewDoc()
	for i := 0; i < 40; i++ {
		doc.Section("SECTION")
		doc.Text(strings.Repeat("roofing underlayment flashing ridge vent ", 8))
		doc.Field("Label", "Value")
		doc.Space(4)
	}

	l := Layout(doc, DefaultGeometry())
	assertInvariant(t, l)

	if l.PageCount() < 2 {
		t.Fatalf("expected multiple pages, got %d", l.PageCount())
	}
}

func TestLayout_SectionHeaderReservesBandPlusAdvance(t *testing.T) {
	doc := NewDoc().Section("COST BREAKDOWN")
	l := Layout(doc, DefaultGeometry())

	if len(l.Pages) != 1 || len(l.Pages[0].Blocks) != 1 {
		t.Fatalf("expected one block on one page")
	}
	b := l.Pages[0].Blocks[0]
	if b.Height != BandHeight+BandAdvance {
		t.Fatalf("expected header height %v, got %v", BandHeight+BandAdvance, b.Height)
	}
	if b.Y != DefaultGeometry().MarginTop {
		t.Fatalf("expected header at top margin, got %v", b.Y)
	}
}

func TestLayout_BlockThatWouldOverflowStartsNewPage(t *testing.T) {
	g := DefaultGeometry()
	doc := NewDoc()

	// Fill the page almost to the limit, then add a block that cannot fit.
	usable := g.PageHeight - g.MarginTop - g.MarginBottom
	doc.Space(usable - 5)
	doc.Section("OVERFLOWING SECTION")

	l := Layout(doc, g)
	assertInvariant(t, l)

	if l.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", l.PageCount())
	}
	second := l.Pages[1].Blocks[0]
	if second.Y != g.MarginTop {
		t.Fatalf("expected section at fresh page top margin, got %v", second.Y)
	}
}

func TestLayout_TableRowHeightIsContentDriven(t *testing.T) {
	g := DefaultGeometry()
	doc := NewDoc().TableBlock(
		[]string{"Item", "Amount", "Share", "Notes"},
		[][]string{
			{"Materials", "$117,300", "54%", "short"},
			{"Labor", "$75,900", "35%", strings.Repeat("very long wrapping note text ", 6)},
		},
	)

	l := Layout(doc, g)
	assertInvariant(t, l)

	block := l.Pages[0].Blocks[0]
	if len(block.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(block.Rows))
	}
	if block.Rows[0].Height != g.BaseRowHeight {
		t.Fatalf("expected short row at base height %v, got %v", g.BaseRowHeight, block.Rows[0].Height)
	}
	long := block.Rows[1]
	wrappedLines := len(long.Cells[3])
	if wrappedLines < 2 {
		t.Fatalf("expected notes cell to wrap, got %d lines", wrappedLines)
	}
	want := float64(wrappedLines) * g.LineHeight
	if want < g.BaseRowHeight {
		want = g.BaseRowHeight
	}
	if long.Height != want {
		t.Fatalf("expected content-driven height %v, got %v", want, long.Height)
	}
}

func TestLayout_FourColumnTableUsesFixedWidths(t *testing.T) {
	g := DefaultGeometry()
	widths := tableWidths(4, g.UsableWidth())

	if widths[0] != 70 || widths[1] != 25 || widths[2] != 25 {
		t.Fatalf("expected [70 25 25 remainder], got %v", widths)
	}
	if widths[3] != g.UsableWidth()-120 {
		t.Fatalf("expected remainder %v, got %v", g.UsableWidth()-120, widths[3])
	}
}

func TestLayout_LongTableBreaksBetweenRows(t *testing.T) {
	g := DefaultGeometry()
	rows := make([][]string, 60)
	for i := range rows {
		rows[i] = []string{"North slope", "Hail impact", "Severe", "Granule loss and exposed mat"}
	}
	doc := NewDoc().TableBlock([]string{"Slope", "Damage Type", "Severity", "Description"}, rows)

	l := Layout(doc, g)
	assertInvariant(t, l)

	if l.PageCount() < 2 {
		t.Fatalf("expected table to span pages, got %d", l.PageCount())
	}

	placed := 0
	for _, p := range l.Pages {
		for _, b := range p.Blocks {
			placed += len(b.Rows)
		}
	}
	if placed != 60 {
		t.Fatalf("expected all 60 rows placed, got %d", placed)
	}
}

func TestLayout_TableRowTallerThanPageSplitsAcrossPages(t *testing.T) {
	g := DefaultGeometry()
	description := strings.Repeat("granule loss with mat exposure along the field and eave edge ", 80)
	doc := NewDoc().TableBlock(
		[]string{"Slope", "Damage Type", "Severity", "Description"},
		[][]string{{"North", "Hail", "Severe", description}},
	)

	l := Layout(doc, g)
	assertInvariant(t, l)

	if l.PageCount() < 2 {
		t.Fatalf("expected the oversized row to span pages, got %d", l.PageCount())
	}

	// Every wrapped description line must survive the split.
	descWidth := tableWidths(4, g.UsableWidth())[3]
	want := len(wrapText(description, charBudget(descWidth, g.avgCharWidth)))
	got := 0
	for _, p := range l.Pages {
		for _, b := range p.Blocks {
			for _, r := range b.Rows {
				got += len(r.Cells[3])
			}
		}
	}
	if got != want {
		t.Fatalf("expected %d description lines across fragments, got %d", want, got)
	}
}

func TestLayout_ForcedPageBreak(t *testing.T) {
	doc := NewDoc().Text("first page").NewPage().Text("second page")
	l := Layout(doc, DefaultGeometry())

	if l.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", l.PageCount())
	}
}

func TestLayout_LongParagraphSplitsAcrossPages(t *testing.T) {
	g := DefaultGeometry()
	doc := NewDoc().Text(strings.Repeat("shingle ridge eave soffit fascia underlayment drip edge valley ", 200))

	l := Layout(doc, g)
	assertInvariant(t, l)

	if l.PageCount() < 2 {
		t.Fatalf("expected paragraph to span pages, got %d", l.PageCount())
	}
}

func TestWrapText_HardSplitsOversizedWords(t *testing.T) {
	lines := wrapText(strings.Repeat("x", 25), 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 hard-split lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len(line) > 10 {
			t.Fatalf("line exceeds budget: %q", line)
		}
	}
}

func TestRender_ProducesPDFBytesWithPlaceholderImage(t *testing.T) {
	doc := NewDoc().
		Section("SITE PHOTOS").
		Picture([]byte("not an image"), 150, 100, "image unavailable").
		Picture(nil, 150, 100, "image unavailable")

	l := Layout(doc, DefaultGeometry())
	out, err := Render(l, Options{FooterText: "RoofScope", ImageUnavailableText: "image unavailable"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected PDF bytes")
	}
	if string(out[:5]) != "%PDF-" {
		t.Fatalf("expected PDF header, got %q", out[:5])
	}
}

func TestRender_IndependentDocumentsPerInvocation(t *testing.T) {
	build := func() Layouted {
		return Layout(NewDoc().Section("TOTAL").Field("Total", "$218,537"), DefaultGeometry())
	}

	first, err := Render(build(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(build(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) == 0 || len(second) == 0 {
		t.Fatalf("expected bytes from both generations")
	}
}

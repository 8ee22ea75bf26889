package render

import "strings"

// Fixed visual contract for section headers: an 8-unit colored band followed
// by 7 units of advance before the next block.
const (
	BandHeight  = 8.0
	BandAdvance = 7.0
)

// Geometry describes the fixed page dimensions in millimeters.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	BaseRowHeight float64
	LineHeight    float64

	// avgCharWidth approximates body-text glyph width for wrapping.
	avgCharWidth float64
}

// DefaultGeometry returns A4 with the application's standard margins.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:     210,
		PageHeight:    297,
		MarginLeft:    15,
		MarginRight:   15,
		MarginTop:     12,
		MarginBottom:  25,
		BaseRowHeight: 7,
		LineHeight:    4.5,
		avgCharWidth:  1.8,
	}
}

// UsableWidth is the horizontal space between margins.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// maxY is the lowest Y a block's bottom edge may reach.
func (g Geometry) maxY() float64 {
	return g.PageHeight - g.MarginBottom
}

// cursor tracks the vertical write position on the current page.
// currentY must never pass pageHeight − bottomMargin without a page break
// happening first.
type cursor struct {
	geom     Geometry
	currentY float64
}

func newCursor(g Geometry) *cursor {
	return &cursor{geom: g, currentY: g.MarginTop}
}

// fits reports whether a block of the given height fits on the current page.
func (c *cursor) fits(height float64) bool {
	return c.currentY+height <= c.geom.maxY()
}

// advance moves the cursor down after a block is placed.
func (c *cursor) advance(height float64) {
	c.currentY += height
}

// reset returns the cursor to the top margin of a fresh page.
func (c *cursor) reset() {
	c.currentY = c.geom.MarginTop
}

// PlacedRow is one laid-out table row: wrapped cell lines plus the
// content-driven row height.
type PlacedRow struct {
	Cells  [][]string
	Height float64
}

// PlacedBlock is a command with its resolved page position.
type PlacedBlock struct {
	Cmd    Command
	Y      float64
	Height float64
	// Lines holds wrapped text for TextBlock commands.
	Lines []string
	// HeaderRow and Rows hold laid-out cells for Table commands.
	HeaderRow *PlacedRow
	Rows      []PlacedRow
	// ColWidths holds the fixed per-table column widths.
	ColWidths []float64
}

// Page is one laid-out page.
type Page struct {
	Blocks []PlacedBlock
}

// Layouted is the result of the layout pass: every block assigned to a page
// and a Y position, with no block bottom past pageHeight − bottomMargin.
type Layouted struct {
	Geometry Geometry
	Pages    []Page
}

// PageCount returns the number of laid-out pages.
func (l Layouted) PageCount() int {
	return len(l.Pages)
}

// Layout walks the document's commands and assigns each to a page position.
// Every write first checks remaining space and starts a new page when the
// block would overflow. Tables break between rows, never inside a row.
func Layout(doc *Doc, g Geometry) Layouted {
	cur := newCursor(g)
	out := Layouted{Geometry: g}
	page := Page{}

	flush := func() {
		out.Pages = append(out.Pages, page)
		page = Page{}
		cur.reset()
	}

	ensure := func(height float64) {
		if !cur.fits(height) {
			flush()
		}
	}

	place := func(b PlacedBlock) {
		b.Y = cur.currentY
		page.Blocks = append(page.Blocks, b)
		cur.advance(b.Height)
	}

	for _, cmd := range doc.Commands() {
		switch c := cmd.(type) {
		case PageBreak:
			flush()

		case Spacer:
			// Whitespace at a page boundary is dropped, not carried over.
			if cur.fits(c.Height) {
				place(PlacedBlock{Cmd: c, Height: c.Height})
			}

		case SectionHeader:
			h := BandHeight + BandAdvance
			ensure(h)
			place(PlacedBlock{Cmd: c, Height: h})

		case KeyValue:
			ensure(g.BaseRowHeight)
			place(PlacedBlock{Cmd: c, Height: g.BaseRowHeight})

		case TextBlock:
			lines := wrapText(c.Text, charBudget(g.UsableWidth(), g.avgCharWidth))
			h := lineCountHeight(len(lines), g)
			// Long paragraphs that cannot fit even a fresh page are split.
			if !cur.fits(h) {
				flush()
			}
			for len(lines) > 0 && !cur.fits(lineCountHeight(len(lines), g)) {
				avail := int((g.maxY() - cur.currentY) / g.LineHeight)
				if avail < 1 {
					flush()
					continue
				}
				head := lines[:avail]
				place(PlacedBlock{Cmd: c, Height: lineCountHeight(len(head), g), Lines: head})
				lines = lines[avail:]
				flush()
			}
			if len(lines) > 0 {
				place(PlacedBlock{Cmd: c, Height: lineCountHeight(len(lines), g), Lines: lines})
			}

		case Image:
			ensure(c.Height)
			place(PlacedBlock{Cmd: c, Height: c.Height})

		case Table:
			layoutTable(c, g, cur, &page, flush)
		}
	}

	if len(page.Blocks) > 0 || len(out.Pages) == 0 {
		out.Pages = append(out.Pages, page)
	}
	return out
}

// layoutTable places a table, repeating nothing across breaks but keeping the
// header with at least the first row. Row height is content-driven:
// max(baseRowHeight, wrappedLineCount × lineHeight).
func layoutTable(t Table, g Geometry, cur *cursor, page *Page, flush func()) {
	widths := tableWidths(len(t.Headers), g.UsableWidth())

	header := layoutRow(t.Headers, widths, g)
	rows := make([]PlacedRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, layoutRow(r, widths, g))
	}

	// The header plus the first row must land on the same page.
	firstChunk := header.Height
	if len(rows) > 0 {
		firstChunk += rows[0].Height
	}
	if !cur.fits(firstChunk) {
		flush()
	}

	block := PlacedBlock{Cmd: t, Y: cur.currentY, HeaderRow: &header, ColWidths: widths}
	block.Height = header.Height
	cur.advance(header.Height)

	for _, r := range rows {
		if !cur.fits(r.Height) {
			// Close the current fragment and continue on a fresh page.
			page.Blocks = append(page.Blocks, block)
			flush()
			block = PlacedBlock{Cmd: t, Y: cur.currentY, ColWidths: widths}
		}
		// A row taller than a whole page is split between pages line by
		// line, like a long paragraph.
		for !cur.fits(r.Height) {
			avail := int((g.maxY() - cur.currentY) / g.LineHeight)
			if avail < 1 {
				avail = 1
			}
			head, tail := splitRow(r, avail, g)
			block.Rows = append(block.Rows, head)
			block.Height += head.Height
			cur.advance(head.Height)
			page.Blocks = append(page.Blocks, block)
			flush()
			block = PlacedBlock{Cmd: t, Y: cur.currentY, ColWidths: widths}
			r = tail
		}
		block.Rows = append(block.Rows, r)
		block.Height += r.Height
		cur.advance(r.Height)
	}
	page.Blocks = append(page.Blocks, block)
}

// splitRow cuts a laid-out row after budget lines. Cells that fit entirely in
// the head leave a blank continuation cell behind so the tail keeps the same
// column count.
func splitRow(r PlacedRow, budget int, g Geometry) (PlacedRow, PlacedRow) {
	head := PlacedRow{Cells: make([][]string, len(r.Cells))}
	tail := PlacedRow{Cells: make([][]string, len(r.Cells))}
	headLines, tailLines := 1, 1
	for i, lines := range r.Cells {
		if len(lines) <= budget {
			head.Cells[i] = lines
			tail.Cells[i] = []string{""}
		} else {
			head.Cells[i] = lines[:budget]
			tail.Cells[i] = lines[budget:]
		}
		if n := len(head.Cells[i]); n > headLines {
			headLines = n
		}
		if n := len(tail.Cells[i]); n > tailLines {
			tailLines = n
		}
	}
	head.Height = float64(headLines) * g.LineHeight
	tail.Height = g.BaseRowHeight
	if h := float64(tailLines) * g.LineHeight; h > tail.Height {
		tail.Height = h
	}
	return head, tail
}

func layoutRow(cells []string, widths []float64, g Geometry) PlacedRow {
	wrapped := make([][]string, len(cells))
	maxLines := 1
	for i, cell := range cells {
		w := widths[len(widths)-1]
		if i < len(widths) {
			w = widths[i]
		}
		lines := wrapText(cell, charBudget(w, g.avgCharWidth))
		if len(lines) == 0 {
			lines = []string{""}
		}
		wrapped[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}

	height := g.BaseRowHeight
	if h := float64(maxLines) * g.LineHeight; h > height {
		height = h
	}
	return PlacedRow{Cells: wrapped, Height: height}
}

// tableWidths computes the fixed per-table column widths. Four-column tables
// use the [70, 25, 25, remainder] contract; other tables split evenly.
func tableWidths(columns int, usable float64) []float64 {
	if columns == 4 {
		return []float64{70, 25, 25, usable - 120}
	}
	if columns < 1 {
		columns = 1
	}
	widths := make([]float64, columns)
	for i := range widths {
		widths[i] = usable / float64(columns)
	}
	return widths
}

func lineCountHeight(lines int, g Geometry) float64 {
	h := float64(lines) * g.LineHeight
	if h < g.BaseRowHeight {
		h = g.BaseRowHeight
	}
	return h
}

// charBudget converts a column width to an approximate character count.
func charBudget(width, avgCharWidth float64) int {
	n := int(width / avgCharWidth)
	if n < 1 {
		n = 1
	}
	return n
}

// wrapText greedily wraps text on spaces; words longer than the budget are
// hard-split rather than overflowing the column.
func wrapText(text string, budget int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []string
	var line strings.Builder

	flushLine := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
		}
	}

	for _, word := range strings.Fields(text) {
		for len(word) > budget {
			flushLine()
			lines = append(lines, word[:budget])
			word = word[budget:]
		}
		switch {
		case line.Len() == 0:
			line.WriteString(word)
		case line.Len()+1+len(word) <= budget:
			line.WriteByte(' ')
			line.WriteString(word)
		default:
			flushLine()
			line.WriteString(word)
		}
	}
	flushLine()
	return lines
}

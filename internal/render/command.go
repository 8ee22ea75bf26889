// Package render provides the paginated document renderer. A Doc accumulates
// typed draw commands; Layout computes page placement with explicit
// page-break bookkeeping; the maroto backend serializes the laid-out pages to
// PDF bytes. Separating "what to render" from "where it lands" keeps the
// pagination logic testable without a PDF backend.
package render

// Command is a typed draw instruction accumulated by a Doc.
type Command interface {
	isCommand()
}

// SectionHeader renders a colored title band. The band is BandHeight units
// tall and is followed by BandAdvance units of vertical advance; both are a
// fixed visual contract.
type SectionHeader struct {
	Title string
}

// TextBlock renders a paragraph wrapped across the full usable width.
type TextBlock struct {
	Text string
	Bold bool
}

// KeyValue renders an aligned label/value line.
type KeyValue struct {
	Key   string
	Value string
}

// Table renders a header row plus data rows. Column widths are fixed per
// table; cell text wraps within its own column and the row grows to fit.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Image renders picture bytes in a fixed-size box. Nil or undecodable data
// renders a placeholder box with the AltText label instead of aborting the
// document.
type Image struct {
	Data      []byte
	Width     float64 // ignored when FullWidth is set
	Height    float64
	FullWidth bool
	AltText   string
}

// Spacer advances the cursor by a fixed height.
type Spacer struct {
	Height float64
}

// PageBreak forces a new page regardless of remaining space.
type PageBreak struct{}

func (SectionHeader) isCommand() {}
func (TextBlock) isCommand()     {}
func (KeyValue) isCommand()      {}
func (Table) isCommand()         {}
func (Image) isCommand()         {}
func (Spacer) isCommand()        {}
func (PageBreak) isCommand()     {}

// Doc is a builder that accumulates draw commands for one document.
// Each report generation owns its own Doc; nothing is shared between
// concurrent generations.
type Doc struct {
	commands []Command
}

// NewDoc creates an empty document builder.
func NewDoc() *Doc {
	return &Doc{}
}

// Add appends arbitrary commands.
func (d *Doc) Add(cmds ...Command) *Doc {
	d.commands = append(d.commands, cmds...)
	return d
}

// Section appends a section header band.
func (d *Doc) Section(title string) *Doc {
	return d.Add(SectionHeader{Title: title})
}

// Text appends a wrapped paragraph.
func (d *Doc) Text(text string) *Doc {
	return d.Add(TextBlock{Text: text})
}

// BoldText appends a wrapped bold paragraph.
func (d *Doc) BoldText(text string) *Doc {
	return d.Add(TextBlock{Text: text, Bold: true})
}

// Field appends a label/value line.
func (d *Doc) Field(key, value string) *Doc {
	return d.Add(KeyValue{Key: key, Value: value})
}

// TableBlock appends a table.
func (d *Doc) TableBlock(headers []string, rows [][]string) *Doc {
	return d.Add(Table{Headers: headers, Rows: rows})
}

// Picture appends a fixed-size image box.
func (d *Doc) Picture(data []byte, width, height float64, altText string) *Doc {
	return d.Add(Image{Data: data, Width: width, Height: height, AltText: altText})
}

// FullWidthPicture appends a full-usable-width image box of the given height.
func (d *Doc) FullWidthPicture(data []byte, height float64, altText string) *Doc {
	return d.Add(Image{Data: data, Height: height, FullWidth: true, AltText: altText})
}

// Space appends vertical whitespace.
func (d *Doc) Space(height float64) *Doc {
	return d.Add(Spacer{Height: height})
}

// NewPage forces a page break.
func (d *Doc) NewPage() *Doc {
	return d.Add(PageBreak{})
}

// Commands returns the accumulated command list.
func (d *Doc) Commands() []Command {
	return d.commands
}

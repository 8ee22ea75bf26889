package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	marotoimage "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Colour palette ──────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 17, Green: 24, Blue: 39}    // near-black
	colorSecondary = &props.Color{Red: 107, Green: 114, Blue: 128} // gray-500
	colorAccent    = &props.Color{Red: 180, Green: 83, Blue: 9}    // amber-700
	colorBandText  = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorTableHead = &props.Color{Red: 254, Green: 243, Blue: 199} // amber-100
	colorTableAlt  = &props.Color{Red: 249, Green: 250, Blue: 251} // gray-50
	colorBorder    = &props.Color{Red: 226, Green: 232, Blue: 240} // slate-200
)

// Options holds per-document rendering settings.
type Options struct {
	// FooterText is the persistent watermark line repeated on every page.
	FooterText string
	// ImageUnavailableText labels placeholder boxes for broken images.
	ImageUnavailableText string
}

// Render serializes laid-out pages to PDF bytes. It is called exactly once
// per generation; calling it again produces a new, independent document.
func Render(l Layouted, opts Options) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(l.Geometry.MarginLeft).
		WithTopMargin(l.Geometry.MarginTop).
		WithRightMargin(l.Geometry.MarginRight).
		Build()

	m := maroto.New(cfg)

	if opts.FooterText != "" {
		if err := m.RegisterFooter(buildFooter(opts.FooterText)); err != nil {
			return nil, fmt.Errorf("register footer: %w", err)
		}
	}

	for _, p := range l.Pages {
		pg := page.New()
		for _, b := range p.Blocks {
			pg.Add(blockRows(b, l.Geometry, opts)...)
		}
		m.AddPages(pg)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func blockRows(b PlacedBlock, g Geometry, opts Options) []core.Row {
	switch c := b.Cmd.(type) {
	case SectionHeader:
		return sectionRows(c)
	case TextBlock:
		return []core.Row{textRow(b, c)}
	case KeyValue:
		return []core.Row{keyValueRow(c, g)}
	case Table:
		return tableRows(b)
	case Image:
		return []core.Row{imageRow(c, b.Height, opts)}
	case Spacer:
		return []core.Row{row.New(c.Height)}
	default:
		return nil
	}
}

// sectionRows draws the fixed-contract title band plus its advance.
func sectionRows(c SectionHeader) []core.Row {
	band := row.New(BandHeight).Add(
		col.New(12).Add(text.New(c.Title, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Color: colorBandText,
			Top:   2,
			Left:  2,
		})),
	).WithStyle(&props.Cell{BackgroundColor: colorAccent})

	return []core.Row{band, row.New(BandAdvance)}
}

func textRow(b PlacedBlock, c TextBlock) core.Row {
	style := props.Text{Size: 9, Color: colorPrimary, Top: 0.5}
	if c.Bold {
		style.Style = fontstyle.Bold
	}
	content := strings.Join(b.Lines, " ")
	return row.New(b.Height).Add(col.New(12).Add(text.New(content, style)))
}

func keyValueRow(c KeyValue, g Geometry) core.Row {
	return row.New(g.BaseRowHeight).Add(
		col.New(4).Add(text.New(c.Key, props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Color: colorSecondary,
			Top:   1,
		})),
		col.New(8).Add(text.New(c.Value, props.Text{
			Size:  9,
			Color: colorPrimary,
			Top:   1,
		})),
	)
}

func tableRows(b PlacedBlock) []core.Row {
	sizes := gridSizes(len(b.ColWidths))
	var rows []core.Row

	if b.HeaderRow != nil {
		headerStyle := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Top: 1.5}
		cols := make([]core.Col, 0, len(b.HeaderRow.Cells))
		for i, cell := range b.HeaderRow.Cells {
			cols = append(cols, col.New(sizes[i]).Add(text.New(strings.Join(cell, " "), headerStyle)))
		}
		rows = append(rows, row.New(b.HeaderRow.Height).Add(cols...).WithStyle(&props.Cell{
			BackgroundColor: colorTableHead,
			BorderType:      border.Bottom,
			BorderColor:     colorBorder,
		}))
	}

	cellStyle := props.Text{Size: 8, Color: colorPrimary, Top: 1}
	for idx, r := range b.Rows {
		cols := make([]core.Col, 0, len(r.Cells))
		for i, cell := range r.Cells {
			size := sizes[len(sizes)-1]
			if i < len(sizes) {
				size = sizes[i]
			}
			cols = append(cols, col.New(size).Add(text.New(strings.Join(cell, " "), cellStyle)))
		}
		mr := row.New(r.Height).Add(cols...)
		if idx%2 == 0 {
			mr.WithStyle(&props.Cell{BackgroundColor: colorTableAlt})
		}
		rows = append(rows, mr)
	}

	return rows
}

// imageRow draws the picture, or a bordered placeholder box when the bytes
// are missing or not a decodable PNG/JPEG. One bad image never aborts the
// rest of the document.
func imageRow(c Image, height float64, opts Options) core.Row {
	ext, ok := sniffImage(c.Data)
	if !ok {
		label := opts.ImageUnavailableText
		if label == "" {
			label = c.AltText
		}
		return row.New(height).Add(
			col.New(12).Add(text.New(label, props.Text{
				Size:  9,
				Color: colorSecondary,
				Align: align.Center,
				Top:   height / 2,
			})),
		).WithStyle(&props.Cell{BorderType: border.Full, BorderColor: colorBorder})
	}

	rect := props.Rect{Center: true, Percent: 100}
	if c.FullWidth {
		rect = props.Rect{Center: false, Percent: 100}
	}
	return row.New(height).Add(
		col.New(12).Add(marotoimage.NewFromBytes(c.Data, ext, rect)),
	)
}

// buildFooter is the persistent per-page watermark band.
func buildFooter(footerText string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(footerText, props.Text{
				Size:  6.5,
				Color: colorSecondary,
				Align: align.Center,
				Top:   4,
			}),
		),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: colorBorder,
	})
}

// sniffImage validates image bytes and reports the maroto extension type.
func sniffImage(data []byte) (extension.Type, bool) {
	if len(data) == 0 {
		return extension.Png, false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return extension.Png, false
	}
	switch format {
	case "png":
		return extension.Png, true
	case "jpeg":
		return extension.Jpg, true
	default:
		return extension.Png, false
	}
}

// gridSizes maps fixed column widths onto maroto's 12-column grid.
func gridSizes(columns int) []int {
	if columns == 4 {
		// The [70, 25, 25, remainder] contract maps closest to 5/2/2/3.
		return []int{5, 2, 2, 3}
	}
	if columns < 1 {
		return []int{12}
	}
	sizes := make([]int, columns)
	base := 12 / columns
	used := 0
	for i := range sizes {
		sizes[i] = base
		used += base
	}
	sizes[columns-1] += 12 - used
	return sizes
}

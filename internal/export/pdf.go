package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const margin = 12.7 // half an inch in mm

var (
	titleColor   = &props.Color{Red: 31, Green: 41, Blue: 55}
	headingColor = &props.Color{Red: 55, Green: 65, Blue: 81}
	bodyColor    = &props.Color{Red: 75, Green: 85, Blue: 99}
)

// PDFRenderer lays out a Document as a letter sized business plan.
type PDFRenderer struct {
	now func() time.Time
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{now: time.Now}
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(margin).
		WithTopMargin(margin).
		WithRightMargin(margin).
		Build()

	m := maroto.New(cfg)

	title := doc.Title
	if title == "" {
		title = "Business Plan"
	}
	m.AddAutoRow(text.NewCol(12, title, props.Text{
		Size:  24,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: titleColor,
	}))
	m.AddRows(row.New(5))

	meta := fmt.Sprintf("Generated on: %s | Industry: %s", r.now().Format("January 02, 2006"), orPlaceholder(doc.Industry))
	m.AddAutoRow(text.NewCol(12, meta, props.Text{Size: 10}))
	m.AddRows(row.New(8))

	for _, s := range doc.sections() {
		m.AddAutoRow(text.NewCol(12, s.Heading, props.Text{
			Top:   4,
			Size:  14,
			Style: fontstyle.Bold,
			Color: headingColor,
		}))
		m.AddAutoRow(text.NewCol(12, s.Body, props.Text{
			Top:   2,
			Size:  11,
			Align: align.Left,
			Color: bodyColor,
		}))
		m.AddRows(row.New(5))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return out.GetBytes(), nil
}

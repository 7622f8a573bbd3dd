// Package document renders report sections as a paginated PDF.
package document

import (
	"fmt"
	"io"

	"fjacquet/expensas-report/internal/fileutils"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/report"
	"fjacquet/expensas-report/internal/reporterror"

	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontRegular = "regular"
	fontBold    = "bold"

	pageWidth  = 595.28
	pageHeight = 841.89
	margin     = 50.0

	lineHeight  = 15.0
	rowHeight   = 18.0
	gapAfter    = 10.0
	columnWidth = 180.0

	chartWidth  = 360.0
	chartHeight = 180.0
)

type rgb struct{ r, g, b uint8 }

var (
	textColor   = rgb{33, 33, 33}
	debtColor   = rgb{198, 40, 40}
	creditColor = rgb{46, 125, 50}
)

// PDFWriter writes one section per unit, each starting on a new page.
type PDFWriter struct {
	Title  string
	logger logging.Logger
}

// NewPDFWriter creates a PDFWriter. title is stored in the document metadata.
func NewPDFWriter(title string, logger logging.Logger) *PDFWriter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &PDFWriter{Title: title, logger: logger}
}

// Write renders sections to path, replacing any existing file atomically.
func (w *PDFWriter) Write(sections []report.Section, path string) error {
	pdf, pages, err := w.render(sections)
	if err != nil {
		return &reporterror.WriteError{Path: path, Err: err}
	}
	if err := fileutils.WriteFileAtomic(path, func(out io.Writer) error {
		return pdf.Write(out)
	}); err != nil {
		return &reporterror.WriteError{Path: path, Err: err}
	}
	w.logger.Debug("PDF rendered",
		logging.F(logging.FieldOutputFile, path),
		logging.F("pages", pages))
	return nil
}

func (w *PDFWriter) render(sections []report.Section) (*gopdf.GoPdf, int, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.SetInfo(gopdf.PdfInfo{Title: w.Title, Creator: "expensas-report"})

	if err := pdf.AddTTFFontData(fontRegular, goregular.TTF); err != nil {
		return nil, 0, fmt.Errorf("failed to load regular font: %w", err)
	}
	if err := pdf.AddTTFFontData(fontBold, gobold.TTF); err != nil {
		return nil, 0, fmt.Errorf("failed to load bold font: %w", err)
	}

	p := &page{pdf: pdf}
	if len(sections) == 0 {
		p.newPage()
		return pdf, p.pages, p.text(fontBold, 18, textColor, w.Title)
	}

	for _, s := range sections {
		if err := p.section(s); err != nil {
			return nil, 0, fmt.Errorf("unit %s: %w", s.UnitID, err)
		}
	}
	return pdf, p.pages, nil
}

// page tracks the vertical cursor and breaks pages on overflow.
type page struct {
	pdf   *gopdf.GoPdf
	y     float64
	pages int
}

func (p *page) newPage() {
	p.pdf.AddPage()
	p.y = margin
	p.pages++
}

func (p *page) reserve(h float64) {
	if p.y+h > pageHeight-margin {
		p.newPage()
	}
}

func (p *page) section(s report.Section) error {
	p.newPage()

	if err := p.text(fontBold, 18, textColor, s.Heading); err != nil {
		return err
	}
	p.y += gapAfter

	if err := p.deposits(s); err != nil {
		return err
	}
	if err := p.feeTable(s.Expensas); err != nil {
		return err
	}
	if err := p.feeTable(s.Water); err != nil {
		return err
	}

	if err := p.text(fontBold, 13, textColor, s.BalanceTitle); err != nil {
		return err
	}
	if err := p.image(s.Chart); err != nil {
		return err
	}

	c := creditColor
	if s.Notice.Kind == report.NoticeDebt {
		c = debtColor
	}
	return p.text(fontBold, 14, c, s.Notice.Text)
}

func (p *page) deposits(s report.Section) error {
	if err := p.text(fontBold, 13, textColor, s.DepositsTitle); err != nil {
		return err
	}
	if len(s.Deposits) == 0 {
		if err := p.text(fontRegular, 10, textColor, s.NoDeposits); err != nil {
			return err
		}
	}
	for _, d := range s.Deposits {
		if err := p.text(fontRegular, 10, textColor, d.Text); err != nil {
			return err
		}
	}
	p.y += gapAfter
	return nil
}

func (p *page) feeTable(t report.FeeTable) error {
	if err := p.text(fontBold, 13, textColor, t.Title); err != nil {
		return err
	}
	if len(t.Lines) == 0 {
		if err := p.text(fontRegular, 10, textColor, t.Empty); err != nil {
			return err
		}
		p.y += gapAfter
		return nil
	}

	if err := p.row(fontBold, t.Header[0], t.Header[1]); err != nil {
		return err
	}
	for _, l := range t.Lines {
		if err := p.row(fontRegular, l.Month, l.Amount.StringFixedBank(2)); err != nil {
			return err
		}
	}
	p.y += gapAfter
	return nil
}

// text writes s wrapped to the content width.
func (p *page) text(font string, size float64, c rgb, s string) error {
	if s == "" {
		return nil
	}
	if err := p.pdf.SetFont(font, "", size); err != nil {
		return err
	}
	p.pdf.SetTextColor(c.r, c.g, c.b)

	lines, err := p.pdf.SplitText(s, pageWidth-2*margin)
	if err != nil {
		return fmt.Errorf("failed to wrap %q: %w", s, err)
	}
	h := size * 1.4
	if h < lineHeight {
		h = lineHeight
	}
	for _, line := range lines {
		p.reserve(h)
		p.pdf.SetX(margin)
		p.pdf.SetY(p.y)
		if err := p.pdf.Cell(nil, line); err != nil {
			return err
		}
		p.y += h
	}
	return nil
}

func (p *page) row(font, left, right string) error {
	if err := p.pdf.SetFont(font, "", 10); err != nil {
		return err
	}
	p.pdf.SetTextColor(textColor.r, textColor.g, textColor.b)
	p.reserve(rowHeight)

	for i, cell := range []string{left, right} {
		align := gopdf.Left | gopdf.Middle
		if i == 1 {
			align = gopdf.Right | gopdf.Middle
		}
		p.pdf.SetX(margin + float64(i)*columnWidth)
		p.pdf.SetY(p.y)
		if err := p.pdf.CellWithOption(&gopdf.Rect{W: columnWidth, H: rowHeight}, " "+cell+" ", gopdf.CellOption{
			Align:  align,
			Border: gopdf.AllBorders,
		}); err != nil {
			return err
		}
	}
	p.y += rowHeight
	return nil
}

func (p *page) image(png []byte) error {
	if len(png) == 0 {
		return nil
	}
	holder, err := gopdf.ImageHolderByBytes(png)
	if err != nil {
		return fmt.Errorf("failed to load chart image: %w", err)
	}
	p.reserve(chartHeight)
	if err := p.pdf.ImageByHolder(holder, margin, p.y, &gopdf.Rect{W: chartWidth, H: chartHeight}); err != nil {
		return fmt.Errorf("failed to place chart image: %w", err)
	}
	p.y += chartHeight + gapAfter
	return nil
}

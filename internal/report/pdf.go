package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres, landscape A4.
const (
	marginX       = 14.0
	marginTop     = 20.0
	marginBottom  = 15.0
	tablesStartY  = 50.0
	pageBreakGap  = 40.0
	tableGap      = 15.0
	titleToTable  = 7.0
	cellPadding   = 1.8
	lineHeight    = 4.2
	bodyFontSize  = 9.0
	fontFamily    = "Helvetica"
	emptyNoteSize = 10.0
)

var headerFill = [3]int{41, 128, 185}

// Render writes doc as a landscape A4 PDF to w.
func Render(doc Document, w io.Writer) error {
	r := newPDFRenderer(doc.Title)
	r.document(doc)

	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

type pdfRenderer struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	pageW float64
	pageH float64

	// headerPages records the page of every drawn table header row.
	headerPages []int
}

func newPDFRenderer(title string) *pdfRenderer {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginX, marginTop, marginX)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(title, true)
	pdf.SetCreator("spbu-monitor", true)

	r := &pdfRenderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	r.pageW, r.pageH = pdf.GetPageSize()
	return r
}

func (r *pdfRenderer) document(doc Document) {
	r.pdf.AddPage()
	r.header(doc)

	y := tablesStartY
	for _, t := range doc.Tables {
		y = r.table(t, y)
	}
}

func (r *pdfRenderer) header(doc Document) {
	pdf := r.pdf
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "B", 18)
	pdf.Text(marginX, 22, r.tr(doc.Title))
	pdf.SetFont(fontFamily, "", 12)
	pdf.Text(marginX, 30, r.tr(doc.Address))
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(marginX, 36, r.tr("Dicetak pada: "+FormatPrintedAt(doc.PrintedAt)))
	pdf.SetTextColor(0, 0, 0)
}

// table draws t starting at y and returns the y where the next table may start.
func (r *pdfRenderer) table(t Table, y float64) float64 {
	pdf := r.pdf
	if len(t.Rows) == 0 {
		if y+10 > r.pageH-marginBottom {
			pdf.AddPage()
			y = marginTop
		}
		pdf.SetFont(fontFamily, "", emptyNoteSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(marginX, y+10, r.tr(t.EmptyNote()))
		return y + 20
	}

	if y > r.pageH-pageBreakGap {
		pdf.AddPage()
		y = marginTop
	}
	pdf.SetFont(fontFamily, "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginX, y, r.tr(t.Title))
	y += titleToTable

	widths := columnWidths(t, r.pageW-2*marginX)
	y = r.row(t.Head, widths, y, true)
	for _, row := range t.Rows {
		h := r.rowHeight(row, widths, false)
		if y+h > r.pageH-marginBottom {
			pdf.AddPage()
			y = r.row(t.Head, widths, marginTop, true)
		}
		y = r.row(row, widths, y, false)
	}
	return y + tableGap
}

func (r *pdfRenderer) setCellStyle(head bool) {
	if head {
		r.pdf.SetFont(fontFamily, "B", bodyFontSize)
		r.pdf.SetTextColor(255, 255, 255)
		r.pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	} else {
		r.pdf.SetFont(fontFamily, "", bodyFontSize)
		r.pdf.SetTextColor(40, 40, 40)
	}
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetLineWidth(0.1)
}

func (r *pdfRenderer) rowHeight(cells []string, widths []float64, head bool) float64 {
	r.setCellStyle(head)
	lines := 1
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if n := len(r.pdf.SplitText(r.tr(cell), widths[i]-2*cellPadding)); n > lines {
			lines = n
		}
	}
	return float64(lines)*lineHeight + 2*cellPadding
}

// row draws one grid row at y and returns the y below it.
func (r *pdfRenderer) row(cells []string, widths []float64, y float64, head bool) float64 {
	h := r.rowHeight(cells, widths, head)
	r.setCellStyle(head)
	if head {
		r.headerPages = append(r.headerPages, r.pdf.PageNo())
	}

	align := "LT"
	style := "D"
	if head {
		align = "CT"
		style = "FD"
	}

	x := marginX
	for i, w := range widths {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		r.pdf.Rect(x, y, w, h, style)
		r.pdf.SetXY(x+cellPadding, y+cellPadding)
		r.pdf.MultiCell(w-2*cellPadding, lineHeight, r.tr(text), "", align[:1], false)
		x += w
	}
	return y + h
}

// columnWidths resolves t.Widths against the usable page width.
func columnWidths(t Table, usable float64) []float64 {
	n := len(t.Head)
	widths := make([]float64, n)
	if n == 0 {
		return widths
	}

	fixed, auto := 0.0, 0
	for i := 0; i < n; i++ {
		if i < len(t.Widths) && t.Widths[i] > 0 {
			widths[i] = t.Widths[i]
			fixed += t.Widths[i]
		} else {
			auto++
		}
	}
	if auto == 0 {
		return widths
	}

	share := (usable - fixed) / float64(auto)
	if share < 10 {
		share = 10
	}
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = share
		}
	}
	return widths
}

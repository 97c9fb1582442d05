package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Doc is free-form text content rendered as a portrait A4 page: a centered
// title, optional meta lines, then the body as flowing paragraphs.
type Doc struct {
	Title string
	Meta  []string
	Body  string
}

// ToDocPDF renders the document and returns its bytes.
func ToDocPDF(d Doc) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	if d.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, d.Title, "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	if len(d.Meta) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range d.Meta {
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, d.Body, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Statement is a document with a line-item table and trailing total lines,
// used for invoices and declarations. Totals are label/value pairs rendered
// right-aligned under the table.
type Statement struct {
	Title  string
	Meta   []string
	Table  Table
	Totals [][2]string
}

// ToStatementPDF renders the statement as a portrait A4 PDF and returns its
// bytes.
func ToStatementPDF(s Statement) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	if s.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, s.Title, "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	if len(s.Meta) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range s.Meta {
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable / float64(len(s.Table.Headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, header := range s.Table.Headers {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range s.Table.Rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(s.Totals) > 0 {
		pdf.Ln(3)
		labelWidth := usable - 2*colWidth
		for _, total := range s.Totals {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(labelWidth+colWidth, 6, total[0], "", 0, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(colWidth, 6, total[1], "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

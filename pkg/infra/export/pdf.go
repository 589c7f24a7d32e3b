package export

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
)

var headingSizes = map[int]float64{1: 20, 2: 16, 3: 13}

func renderPDF(blocks []block) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Documentation", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()

	for _, b := range blocks {
		switch b.kind {
		case blockHeading:
			size, ok := headingSizes[b.level]
			if !ok {
				size = 12
			}
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, size*0.5, tr(b.text), "", "L", false)
			pdf.Ln(1)

		case blockCode:
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(242, 242, 242)
			pdf.MultiCell(0, 4.5, tr(strings.ReplaceAll(b.text, "\t", "    ")), "", "L", true)
			pdf.Ln(2)

		case blockListItem:
			pdf.SetFont("Helvetica", "", 11)
			indent := float64(b.level) * 5
			pdf.SetX(left + indent)
			pdf.MultiCell(0, 5.5, tr("• "+b.text), "", "L", false)

		case blockRule:
			pdf.Ln(2)
			y := pdf.GetY()
			pdf.Line(left, y, pageWidth-right, y)
			pdf.Ln(2)

		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, tr(b.text), "", "L", false)
			pdf.Ln(1.5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render PDF")
	}

	return buf.Bytes(), nil
}

package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/iho/amortize/internal/domain"
)

const (
	pageWidth    = 210.0 // A4
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	rowHeight = 6.0
)

// Colours of the principal/interest split.
var (
	principalColor = [3]int{52, 152, 219}
	interestColor  = [3]int{231, 76, 60}
)

var scheduleColumns = []struct {
	title string
	width float64
	align string
}{
	{"#", 14, "C"},
	{"Date", 26, "C"},
	{"Payment", 35, "R"},
	{"Principal", 35, "R"},
	{"Interest", 35, "R"},
	{"Balance", 35, "R"},
}

type pdfReport struct {
	pdf  *fpdf.Fpdf
	calc *domain.Calculation
}

// WritePDF renders a printable summary and amortization schedule to w.
// Every call builds and discards its own document.
func WritePDF(w io.Writer, calc *domain.Calculation) error {
	r := newPDFReport(calc)
	r.build()

	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	return r.pdf.Output(w)
}

func newPDFReport(calc *domain.Calculation) *pdfReport {
	return &pdfReport{
		pdf:  fpdf.New("P", "mm", "A4", ""),
		calc: calc,
	}
}

func (r *pdfReport) build() {
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(false, marginBottom)
	r.pdf.SetTitle("Mortgage Amortization Schedule", false)
	r.pdf.SetCreator("amortize", false)
	r.pdf.SetCreationDate(r.calc.GeneratedAt)
	r.pdf.AliasNbPages("")
	r.pdf.SetFooterFunc(r.footer)

	r.pdf.AddPage()
	r.addSummary()
	r.addBreakdown()
	r.addSchedule()
}

func (r *pdfReport) addSummary() {
	in := r.calc.Input
	s := r.calc.Summary

	r.pdf.SetFont("Helvetica", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Mortgage Amortization Schedule", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 6,
		fmt.Sprintf("%s at %g%% over %d years", domain.FormatMoney(in.Principal), in.AnnualRatePercent, in.TermYears),
		"", 1, "L", false, 0, "")
	r.pdf.Ln(4)

	r.pdf.SetFont("Helvetica", "B", 14)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.CellFormat(contentWidth, 9, "Monthly payment: "+domain.FormatMoney(s.MonthlyPayment), "", 1, "L", false, 0, "")

	r.pdf.SetFont("Helvetica", "", 11)
	r.summaryLine("Total principal", s.Principal)
	r.summaryLine("Total interest", s.TotalInterest)
	r.summaryLine("Total cost", s.TotalPayment)
	r.pdf.Ln(4)
}

func (r *pdfReport) summaryLine(label string, amount float64) {
	r.pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
	r.pdf.CellFormat(50, 7, domain.FormatMoney(amount), "", 1, "R", false, 0, "")
}

// addBreakdown draws the principal/interest split as a stacked bar.
func (r *pdfReport) addBreakdown() {
	b := r.calc.Breakdown
	total := b.Principal.Amount + b.Interest.Amount
	if total <= 0 {
		return
	}

	x, y := marginLeft, r.pdf.GetY()
	principalWidth := contentWidth * b.Principal.Amount / total

	r.pdf.SetFillColor(principalColor[0], principalColor[1], principalColor[2])
	r.pdf.Rect(x, y, principalWidth, 8, "F")
	r.pdf.SetFillColor(interestColor[0], interestColor[1], interestColor[2])
	r.pdf.Rect(x+principalWidth, y, contentWidth-principalWidth, 8, "F")

	r.pdf.SetY(y + 10)
	r.pdf.SetFont("Helvetica", "", 9)
	for _, slice := range []domain.Slice{b.Principal, b.Interest} {
		r.pdf.CellFormat(contentWidth/2, 5,
			fmt.Sprintf("%s: %s (%d%%)", slice.Label, domain.FormatMoney(slice.Amount), slice.Percent),
			"", 0, "L", false, 0, "")
	}
	r.pdf.Ln(10)
}

func (r *pdfReport) addSchedule() {
	r.tableHeader()

	r.pdf.SetFont("Helvetica", "", 9)
	r.pdf.SetTextColor(0, 0, 0)

	for i, e := range r.calc.Schedule {
		if r.pdf.GetY()+rowHeight > pageHeight-marginBottom {
			r.pdf.AddPage()
			r.tableHeader()
			r.pdf.SetFont("Helvetica", "", 9)
			r.pdf.SetTextColor(0, 0, 0)
		}

		fill := i%2 == 1
		r.pdf.SetFillColor(245, 247, 250)

		cells := []string{
			fmt.Sprintf("%d", e.Period),
			domain.FormatPeriodDate(e.Date),
			domain.FormatMoney(e.Payment),
			domain.FormatMoney(e.Principal),
			domain.FormatMoney(e.Interest),
			domain.FormatMoney(e.Balance),
		}
		for c, col := range scheduleColumns {
			r.pdf.CellFormat(col.width, rowHeight, cells[c], "", 0, col.align, fill, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

func (r *pdfReport) tableHeader() {
	r.pdf.SetFont("Helvetica", "B", 9)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for _, col := range scheduleColumns {
		r.pdf.CellFormat(col.width, 7, col.title, "", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) footer() {
	r.pdf.SetY(-15)
	r.pdf.SetFont("Helvetica", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", r.pdf.PageNo()), "", 0, "C", false, 0, "")
}

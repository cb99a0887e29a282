package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/amortize/internal/domain"
)

func testCalculation(termYears int) *domain.Calculation {
	in := domain.LoanInput{Principal: 300000, AnnualRatePercent: 6, TermYears: termYears}
	start := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	summary := domain.ComputePayment(in.Principal, in.AnnualRatePercent, in.TermYears)

	return &domain.Calculation{
		ID:          "calc-1",
		GeneratedAt: start,
		Input:       in,
		Summary:     summary,
		Breakdown:   domain.NewBreakdown(summary),
		Schedule:    domain.GenerateSchedule(in.Principal, in.AnnualRatePercent, in.TermYears, summary.MonthlyPayment, start),
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WritePDF(&buf, testCalculation(30)))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
}

func TestPDFReport_Pagination(t *testing.T) {
	short := newPDFReport(testCalculation(1))
	short.build()
	require.NoError(t, short.pdf.Error())
	assert.Equal(t, 1, short.pdf.PageNo())

	long := newPDFReport(testCalculation(30))
	long.build()
	require.NoError(t, long.pdf.Error())
	// 360 rows at 6mm cannot fit on fewer than eight A4 pages.
	assert.GreaterOrEqual(t, long.pdf.PageNo(), 8)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteSummary(&buf, testCalculation(30)))

	out := buf.String()
	assert.Contains(t, out, "$1,798.65")
	assert.Contains(t, out, "$347,514.57")
	assert.Contains(t, out, "$647,514.57")
	assert.Contains(t, out, "54%")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteTable(&buf, testCalculation(1)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 4 summary lines, a blank line, the header and 12 payments.
	require.Len(t, lines, 4+1+1+12)
	assert.Contains(t, lines[6], "Nov 2026")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[len(lines)-1]), "$0.00"))
}

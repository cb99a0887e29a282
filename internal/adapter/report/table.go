package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iho/amortize/internal/domain"
)

// WriteSummary writes the payment summary and breakdown as plain text.
func WriteSummary(w io.Writer, calc *domain.Calculation) error {
	s := calc.Summary
	b := calc.Breakdown

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Monthly payment\t%s\t\n", domain.FormatMoney(s.MonthlyPayment))
	fmt.Fprintf(tw, "Total principal\t%s\t%d%%\t\n", domain.FormatMoney(s.Principal), b.Principal.Percent)
	fmt.Fprintf(tw, "Total interest\t%s\t%d%%\t\n", domain.FormatMoney(s.TotalInterest), b.Interest.Percent)
	fmt.Fprintf(tw, "Total cost\t%s\t\n", domain.FormatMoney(s.TotalPayment))

	return tw.Flush()
}

// WriteTable writes the summary followed by the full schedule as an aligned text table.
func WriteTable(w io.Writer, calc *domain.Calculation) error {
	if err := WriteSummary(w, calc); err != nil {
		return err
	}

	if len(calc.Schedule) == 0 {
		return nil
	}

	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tDate\tPayment\tPrincipal\tInterest\tBalance\t")
	for _, e := range calc.Schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			e.Period,
			domain.FormatPeriodDate(e.Date),
			domain.FormatMoney(e.Payment),
			domain.FormatMoney(e.Principal),
			domain.FormatMoney(e.Interest),
			domain.FormatMoney(e.Balance),
		)
	}

	return tw.Flush()
}

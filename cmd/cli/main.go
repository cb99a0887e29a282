package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/amortize/internal/adapter/http/dto"
	"github.com/iho/amortize/internal/adapter/report"
	"github.com/iho/amortize/internal/domain"
	"github.com/iho/amortize/internal/infrastructure/idgen"
	"github.com/iho/amortize/internal/usecase"
)

var (
	baseURL string
	timeout time.Duration

	// clock is replaced in tests to pin the schedule start date.
	clock usecase.Clock = usecase.SystemClock{}
)

// loanFlags holds the loan parameters shared by local and remote commands.
type loanFlags struct {
	principal float64
	rate      float64
	term      int
	start     string
}

func (f *loanFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.principal, "principal", 0, "Loan amount")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().IntVar(&f.term, "term", 30, "Loan term in years")
	cmd.Flags().StringVar(&f.start, "start", "", "Schedule start month (YYYY-MM or YYYY-MM-DD), defaults to today")
}

func (f *loanFlags) input() (usecase.CalculateInput, error) {
	input := usecase.CalculateInput{
		Principal:         f.principal,
		AnnualRatePercent: f.rate,
		TermYears:         f.term,
	}

	if f.start != "" {
		start, err := dto.ParseStartDate(f.start)
		if err != nil {
			return usecase.CalculateInput{}, err
		}
		input.StartDate = &start
	}

	return input, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "amortize",
		Short:         "Fixed-rate mortgage calculator",
		Long:          `Compute monthly payments and amortization schedules for fixed-rate mortgages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the amortize API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	remoteCmd := &cobra.Command{
		Use:   "remote",
		Short: "Calculate through a running amortize server",
	}
	remoteCmd.AddCommand(remoteCalculateCmd())

	rootCmd.AddCommand(calculateCmd(), batchCmd(), remoteCmd)

	return rootCmd
}

func newMortgageUseCase() *usecase.MortgageUseCase {
	return usecase.NewMortgageUseCase(clock, idgen.NewULIDGenerator(), nil)
}

func calculateCmd() *cobra.Command {
	var (
		loan   loanFlags
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a mortgage locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loan.input()
			if err != nil {
				return err
			}

			calc, err := newMortgageUseCase().Calculate(cmd.Context(), input)
			if err != nil {
				return describeError(err)
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			return writeCalculation(w, calc, format)
		},
	}

	loan.register(cmd)
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write output to file instead of stdout")

	return cmd
}

func writeCalculation(w io.Writer, calc *domain.Calculation, format string) error {
	switch format {
	case "table":
		return report.WriteTable(w, calc)
	case "json":
		return printJSON(w, dto.CalculationFromDomain(calc, true))
	case "pdf":
		return report.WritePDF(w, calc)
	default:
		return fmt.Errorf("unknown format %q (want table, json or pdf)", format)
	}
}

// describeError expands validation failures into one line per field.
func describeError(err error) error {
	fields := dto.FieldErrorsFromDomain(err)
	if len(fields) == 0 {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("invalid loan input:")
	for _, f := range fields {
		fmt.Fprintf(&buf, "\n  %s: %s", f.Field, f.Message)
	}
	return errors.New(buf.String())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func remoteCalculateCmd() *cobra.Command {
	var (
		loan     loanFlags
		schedule bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a mortgage through the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return remoteCalculate(ctx, cmd.OutOrStdout(), loan, schedule)
		},
	}

	loan.register(cmd)
	cmd.Flags().BoolVar(&schedule, "schedule", false, "Include the full schedule in the response")

	return cmd
}

func remoteCalculate(ctx context.Context, w io.Writer, loan loanFlags, schedule bool) error {
	payload, err := json.Marshal(map[string]any{
		"principal":           loan.principal,
		"annual_rate_percent": loan.rate,
		"term_years":          loan.term,
		"start_date":          loan.start,
		"include_schedule":    schedule,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/v1/mortgages/calculate", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			msg := apiErr.Error
			for _, f := range apiErr.Fields {
				msg += fmt.Sprintf("\n  %s: %s", f.Field, f.Message)
			}
			return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result dto.CalculationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return printJSON(w, result)
}

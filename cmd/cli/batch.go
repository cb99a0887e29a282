package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iho/amortize/internal/domain"
	"github.com/iho/amortize/internal/usecase"
)

// Scenario is one loan of a batch file.
type Scenario struct {
	Name      string  `yaml:"name"`
	Principal float64 `yaml:"principal"`
	Rate      float64 `yaml:"rate"`
	TermYears int     `yaml:"term_years"`
}

// ScenarioFile is the top-level document of a batch file.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a batch file.
func LoadScenarios(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%s contains no scenarios", filename)
	}

	return &file, nil
}

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <scenarios.yaml>",
		Short: "Summarize every scenario of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := LoadScenarios(args[0])
			if err != nil {
				return err
			}

			return runBatch(cmd, cmd.OutOrStdout(), file.Scenarios)
		},
	}
}

func runBatch(cmd *cobra.Command, w io.Writer, scenarios []Scenario) error {
	uc := newMortgageUseCase()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tMONTHLY\tTOTAL INTEREST\tTOTAL COST\tINTEREST %")

	failed := 0
	for i, s := range scenarios {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		calc, err := uc.Summarize(cmd.Context(), usecase.CalculateInput{
			Principal:         s.Principal,
			AnnualRatePercent: s.Rate,
			TermYears:         s.TermYears,
		})
		if err != nil {
			failed++
			fmt.Fprintf(tw, "%s\terror: %v\t\t\t\n", name, err)
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\n",
			name,
			domain.FormatMoney(calc.Summary.MonthlyPayment),
			domain.FormatMoney(calc.Summary.TotalInterest),
			domain.FormatMoney(calc.Summary.TotalPayment),
			calc.Breakdown.Interest.Percent,
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"commute-agent/domain"
	"commute-agent/logger"
	"commute-agent/service"
)

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringP("file", "f", "", "Input JSON file ('-' reads stdin)")
	evaluateCmd.Flags().Float64("fuel-price", 0, "Gasoline price in won per liter (default: engine default)")
	evaluateCmd.Flags().String("log-level", "", "Log engine diagnostics to stderr at this level (debug, info, warn)")
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate -f INPUT.json",
	Short: "Evaluate one input record and print the recommendation",
	Long: `Evaluate reads an input record (money in 만원), runs the full cost,
break-even and affordability analysis offline, and prints the result as JSON.`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return fmt.Errorf("input file required: commute-agent evaluate -f <file>")
	}

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	var in domain.InputRecord
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if price, _ := cmd.Flags().GetFloat64("fuel-price"); price > 0 {
		in.FuelPricePerLiter = &price
	}

	log := logger.NewNoOpLogger()
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		log = logger.NewStructured(level, "console")
	}

	engine := service.NewRecommendationEngine(log)
	result, err := engine.Recommend(in)
	if err != nil {
		var inputErr *service.InputError
		if errors.As(err, &inputErr) {
			printFieldErrors(cmd.ErrOrStderr(), inputErr.Fields)
		}
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func printFieldErrors(w io.Writer, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, fields[k])
	}
}

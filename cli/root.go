package cli

import (
	"os"

	"github.com/spf13/cobra"

	"commute-agent/config"
)

var rootCmd = &cobra.Command{
	Use:   "commute-agent",
	Short: "Car ownership versus public transit decision engine",
	Long: `commute-agent compares the long-run cost of buying a car (cash or
installment) with commuting by public transit, and recommends one of the two.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (default: ./configs/config.yaml)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

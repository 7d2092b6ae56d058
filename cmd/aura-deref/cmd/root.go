// Package cmd implements the aura-deref command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killvxk/aura/internal/config"
)

var (
	cfgFile string         // config file path from the --config flag
	cfg     *config.Config // loaded once in PersistentPreRunE

	silentMode   bool
	abortOnError bool
)

var rootCmd = &cobra.Command{
	Use:   "aura-deref",
	Short: "Runs the convergent AST-rewriting engine over a parsed source tree.",
	Long: `aura-deref reads the JSON AST an external parser produces for a source
file (or a directory of them), applies the deobfuscating rewrite rules to
convergence, and reports or writes back the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			loadedCfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}
			cfg = loadedCfg
			applyFlagOverrides(cfg, cmd)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command) {
	if cmd.Flags().Changed("silent") {
		cfg.Silent = silentMode
	}
	if cmd.Flags().Changed("abort-on-error") {
		cfg.AbortOnError = abortOnError
	}
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./aura.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&silentMode, "silent", "s", false, "Suppress informational output (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&abortOnError, "abort-on-error", true, "Stop directory processing on the first error (overrides config)")

	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(dirCmd)
	rootCmd.AddCommand(inspectCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killvxk/aura/pkg/api"
)

var outputFile string

var fileCmd = &cobra.Command{
	Use:   "file <ast_json_path>",
	Short: "Rewrite a single parsed-AST JSON file",
	Long: `Reads a single JSON AST file, runs the configured stage pipeline to
convergence, and writes the rewritten tree to stdout or --output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		cmd.SilenceUsage = true

		engine, err := api.NewEngineWithConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		out, err := engine.RewriteJSON(raw)
		if err != nil {
			return fmt.Errorf("failed to rewrite %s: %w", args[0], err)
		}

		if outputFile == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(outputFile, out, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		if !cfg.Silent {
			fmt.Printf("Wrote rewritten tree to %s\n", outputFile)
		}
		return nil
	},
}

func init() {
	fileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")
}

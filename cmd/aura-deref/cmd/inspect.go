package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killvxk/aura/internal/parsetree"
	"github.com/killvxk/aura/pkg/api"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <ast_json_path>",
	Short: "Reports what rewriting would do, without writing output",
	Long: `Parses the JSON AST file, runs it through the configured pipeline, and
reports whether the tree was traversed and which sink calls the taint
stage flagged, without writing a rewritten tree anywhere.`,
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

		parsed, err := parsetree.Decode(raw)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", args[0], err)
		}

		result, err := engine.Inspect(parsed.Root)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", args[0], err)
		}

		fmt.Printf("Source encoding: %s\n", orDefault(parsed.Encoding, "unknown"))
		fmt.Printf("Traversed: %t\n", result.Traversed)
		if len(result.Findings) == 0 {
			fmt.Println("Sink calls found: none")
			return nil
		}
		fmt.Printf("Sink calls found: %d\n", len(result.Findings))
		for _, f := range result.Findings {
			fmt.Printf("  - line %d: %s\n", f.Node.Line(), f.FullName)
		}
		return nil
	},
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

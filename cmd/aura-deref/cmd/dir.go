package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killvxk/aura/pkg/api"
)

var outputDir string

var dirCmd = &cobra.Command{
	Use:   "dir <source_directory>",
	Short: "Rewrite every parsed-AST JSON file in a directory tree",
	Long: `Recursively walks the source directory for .json AST files, runs each
through the rewriting engine, and writes the results to the target
directory, preserving the original structure. Paths matching the
configuration's skip list are skipped entirely; paths matching the keep
list are copied through unmodified.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if outputDir == "" {
			return fmt.Errorf("output directory (-o, --output) is required for directory rewriting")
		}
		info, err := os.Stat(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("source directory %q not found", args[0])
			}
			return fmt.Errorf("error checking source directory %q: %w", args[0], err)
		}
		if !info.IsDir() {
			return fmt.Errorf("source path %q is not a directory", args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		cmd.SilenceUsage = true

		engine, err := api.NewEngineWithConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		sourceDir := args[0]
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}

		var collectedErrors []error

		walkErr := filepath.WalkDir(sourceDir, func(entryPath string, d fs.DirEntry, err error) error {
			if err != nil {
				werr := fmt.Errorf("error accessing %q: %w", entryPath, err)
				collectedErrors = append(collectedErrors, werr)
				if cfg.AbortOnError {
					return werr
				}
				return nil
			}

			relPath, err := filepath.Rel(sourceDir, entryPath)
			if err != nil {
				return err
			}
			if relPath == "." {
				return nil
			}
			targetPath := filepath.Join(outputDir, relPath)

			if matchesAny(relPath, cfg.SkipPaths) {
				if !cfg.Silent {
					fmt.Printf("Skipping: %s\n", entryPath)
				}
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return os.MkdirAll(targetPath, 0755)
			}

			if matchesAny(relPath, cfg.KeepPaths) || !strings.EqualFold(filepath.Ext(entryPath), ".json") {
				if !cfg.Silent {
					fmt.Printf("Copying (unmodified): %s -> %s\n", entryPath, targetPath)
				}
				return copyFile(entryPath, targetPath)
			}

			raw, err := os.ReadFile(entryPath)
			if err != nil {
				rerr := fmt.Errorf("failed to read %s: %w", entryPath, err)
				collectedErrors = append(collectedErrors, rerr)
				if cfg.AbortOnError {
					return rerr
				}
				return nil
			}

			out, err := engine.RewriteJSON(raw)
			if err != nil {
				perr := fmt.Errorf("failed to rewrite %s: %w", entryPath, err)
				collectedErrors = append(collectedErrors, perr)
				if cfg.AbortOnError {
					return perr
				}
				return nil
			}

			if err := os.WriteFile(targetPath, out, 0644); err != nil {
				werr := fmt.Errorf("failed to write %s: %w", targetPath, err)
				collectedErrors = append(collectedErrors, werr)
				if cfg.AbortOnError {
					return werr
				}
				return nil
			}
			if !cfg.Silent {
				fmt.Printf("Rewrote: %s -> %s\n", entryPath, targetPath)
			}
			return nil
		})
		if walkErr != nil {
			return walkErr
		}
		if len(collectedErrors) > 0 && !cfg.Silent {
			fmt.Printf("Completed with %d error(s):\n", len(collectedErrors))
			for _, e := range collectedErrors {
				fmt.Printf("  - %v\n", e)
			}
		}
		return nil
	},
}

// matchesAny reports whether relPath matches any of the glob patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, relPath); err == nil && matched {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

func init() {
	dirCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (required)")
}

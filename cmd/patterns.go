package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/model"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Inspect and manage the domain email-pattern cache",
}

var patternsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all cached domain patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newPatternStore(cmd.Context(), cfg)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(store.Snapshot())
	},
}

var patternsSeedCmd = &cobra.Command{
	Use:   "seed DOMAIN EMAIL...",
	Short: "Infer and cache a domain's pattern from known addresses",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store := newPatternStore(ctx, cfg)

		domain, emails := args[0], args[1:]
		shape := store.Infer(emails, domain)
		if shape == "" {
			return eris.Errorf("patterns: no recognizable shape among %d addresses", len(emails))
		}

		if path := cfg.Patterns.SnapshotPath; path != "" {
			if err := store.SaveFile(ctx, path); err != nil {
				return err
			}
		}

		return json.NewEncoder(os.Stdout).Encode(map[string]model.DomainPattern{domain: shape})
	},
}

var patternsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the pattern cache to the configured snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Patterns.SnapshotPath == "" {
			return eris.New("patterns: no snapshot_path configured")
		}
		store := newPatternStore(cmd.Context(), cfg)
		return store.SaveFile(cmd.Context(), cfg.Patterns.SnapshotPath)
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.AddCommand(patternsListCmd)
	patternsCmd.AddCommand(patternsSeedCmd)
	patternsCmd.AddCommand(patternsSaveCmd)
}

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify ADDRESS",
	Short: "Verify a single email address and print its confidence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store := newPatternStore(ctx, cfg)
		engine := newEngine(cfg, store)

		result := engine.Verify(ctx, args[0])

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

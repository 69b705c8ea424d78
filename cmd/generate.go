package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

var (
	genIndustry string
	genLocation string
	genSize     string
	genLimit    int
	genSave     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Discover companies and enrich contacts for an industry/location",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if deadline := cfg.Pipeline.Deadline(); deadline > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, deadline)
			defer cancel()
		}

		store := newPatternStore(ctx, cfg)
		engine := newEngine(cfg, store)
		svc := newService(cfg, engine)

		report, err := svc.Run(ctx, model.Request{
			Industry:    genIndustry,
			Location:    genLocation,
			CompanySize: genSize,
			Limit:       genLimit,
			SaveToDB:    genSave,
		})
		if err != nil {
			return err
		}

		if path := cfg.Patterns.SnapshotPath; path != "" {
			if err := store.SaveFile(context.WithoutCancel(ctx), path); err != nil {
				zap.L().Warn("pattern snapshot save failed", zap.String("path", path), zap.Error(err))
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genIndustry, "industry", "", "target industry (required)")
	generateCmd.Flags().StringVar(&genLocation, "location", "", "target location, e.g. \"Austin, TX\"")
	generateCmd.Flags().StringVar(&genSize, "size", "", "company size bucket, e.g. 10-50")
	generateCmd.Flags().IntVar(&genLimit, "limit", 10, "maximum companies to discover")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "mark the report for downstream persistence")
	_ = generateCmd.MarkFlagRequired("industry")
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/core/logger"
	reportAdapters "freight-emissions/internal/features/report/adapters"
	shipmentAdapters "freight-emissions/internal/features/shipment/adapters"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrIncomplete is returned in strict mode when any leg could not be computed.
var ErrIncomplete = errors.New("calculation incomplete: some legs failed")

// sessionCloseTimeout bounds the logout at the end of a run.
const sessionCloseTimeout = 10 * time.Second

// NewCalculateCmd creates the calculate command.
func NewCalculateCmd(cfg *config.AppConfig) *cobra.Command {
	var (
		input  string
		format string
		store  bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the emissions of one shipment",
		Long: `Reads one shipment with its legs and the repositioning history from a YAML or JSON
document and prints road, air and repositioning emissions.

Legs that cannot be computed are listed and mark the report incomplete.`,
		Example: `  # Print a text report
  freight-emissions calculate --input shipment.yaml

  # Store the report and fail when a leg could not be computed
  freight-emissions calculate --input shipment.yaml --format json --store --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, cfg, input, format, store, strict)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input document (YAML or JSON)")
	cmd.Flags().StringVarP(&format, "format", "f", reportAdapters.FormatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&store, "store", false, "store the report in Redis")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any leg failed")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCalculate(cmd *cobra.Command, cfg *config.AppConfig, input, format string, store, strict bool) error {
	writer, err := reportAdapters.NewWriter(format)
	if err != nil {
		return err
	}
	if store && cfg.Redis.URL == "" {
		return errors.New("--store needs REDIS_URL")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := shipmentAdapters.NewYAMLFileSource(input).Load(ctx)
	if err != nil {
		return err
	}

	rt, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sessionCloseTimeout)
		defer cancel()
		_ = rt.Close(closeCtx)
	}()

	report, err := rt.calculator.Calculate(ctx, doc)
	if err != nil {
		return err
	}

	if store {
		if err := rt.reports.Store(ctx, report); err != nil {
			return err
		}
		logger.Get().Info("Report stored", zap.String("report_id", report.ID))
	}

	if err := writer.Write(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if strict && !report.Complete {
		return fmt.Errorf("%w (%d)", ErrIncomplete, len(report.FailedLegs))
	}
	return nil
}

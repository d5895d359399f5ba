package main

import (
	"candystore/internal/config"
	"candystore/internal/seed"
	"candystore/internal/shop"
	"candystore/pkg/logger"
	"candystore/pkg/metrics"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// firstStaff returns the email of the first staff account in s.
func firstStaff(s *seed.Seed) string {
	for _, a := range s.Accounts {
		if a.Role == seed.RoleStaff {
			return a.Email
		}
	}

	return ""
}

// writeMetrics renders every collected metric family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("could not write metric family: %w", err)
		}
	}

	return nil
}

// simulateCommand constructs the 'simulate' subcommand that runs the seeded
// scenario through the shop and prints the resulting sales report.
func simulateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Runs the seeded scenario and prints the sales report",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			seedPath, _ := cmd.Flags().GetString("seed")
			staffEmail, _ := cmd.Flags().GetString("staff")

			s, err := seed.Load(seedPath)
			if err != nil {
				logger.Fatal(ctx, "could not load seed", zap.String("path", seedPath), zap.Error(err))
			}
			if staffEmail == "" {
				staffEmail = firstStaff(s)
			}

			reg := prometheus.NewRegistry()
			m, err := metrics.NewShop(reg, cfg.Metrics.Namespace)
			if err != nil {
				logger.Fatal(ctx, "could not create metrics", zap.Error(err))
			}
			sh := shop.New(m)

			summary, err := s.Apply(ctx, sh)
			if err != nil {
				logger.Fatal(ctx, "could not apply seed", zap.Error(err))
			}
			logger.Info(ctx, "scenario finished",
				zap.Int("orders", len(summary.Orders)),
				zap.Int("rejected", summary.Rejected))

			report, err := sh.SalesReport(ctx, staffEmail)
			if err != nil {
				logger.Fatal(ctx, "could not build sales report", zap.String("staff", staffEmail), zap.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), report) //nolint: errcheck

			if cfg.Metrics.Print {
				if err := writeMetrics(cmd.OutOrStdout(), reg); err != nil {
					logger.Error(ctx, "could not print metrics", zap.Error(err))
				}
			}
		},
	}

	cmd.Flags().String("seed", cfg.Seed.Path, "Seed file path")
	cmd.Flags().String("staff", "", "Staff email used for the report (defaults to the first staff account)")

	return cmd
}

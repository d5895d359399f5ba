package main

import (
	"candystore/internal/config"
	"candystore/internal/seed"
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand constructs the 'validate' subcommand that checks every
// seeded account against the identity rules without running the scenario.
func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validates the accounts in the seed file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seedPath, _ := cmd.Flags().GetString("seed")

			s, err := seed.Load(seedPath)
			if err != nil {
				return err //nolint: wrapcheck
			}
			accounts, err := s.DomainAccounts()
			if err != nil {
				return err //nolint: wrapcheck
			}

			invalid := 0
			out := cmd.OutOrStdout()
			for _, a := range accounts {
				if err := a.Validate(); err != nil {
					invalid++
					fmt.Fprintf(out, "INVALID %s: %v\n", a.Profile().DisplayInfo(), err) //nolint: errcheck

					continue
				}
				fmt.Fprintf(out, "OK      %s\n", a.Profile().DisplayInfo()) //nolint: errcheck
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d accounts are invalid", invalid, len(accounts))
			}

			return nil
		},
	}

	cmd.Flags().String("seed", cfg.Seed.Path, "Seed file path")

	return cmd
}

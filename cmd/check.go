package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"brandintel/internal/config"
	"brandintel/internal/typo"
	"brandintel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand constructs the 'check' subcommand that runs a one-shot
// typosquatting probe for a domain and prints the result as JSON, without
// touching the database or the job queue.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <domain>",
		Short: "Probes typosquatting variants of a domain and prints the result",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			domainName, err := typo.NormalizeDomain(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid domain", zap.Error(err))
			}

			result, err := newProber(cfg).Check(ctx, domainName)
			if err != nil {
				logger.Fatal(ctx, "probe failed", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				logger.Fatal(ctx, "could not encode result", zap.Error(err))
			}

			fmt.Fprintf(os.Stderr, "checked %d variants, %d registered\n",
				len(result.VariantsChecked), len(result.RegisteredVariants))
		},
	}

	return cmd
}

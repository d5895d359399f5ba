// Package main provides the CLI entrypoint for the candy store.
// It loads configuration, initializes logging and wires the subcommands.
package main

import (
	"candystore/internal/config"
	"candystore/pkg/logger"
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig reads configPath, falling back to environment variables and
// defaults when the file does not exist.
func loadConfig(configPath string) (*config.Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config.LoadEnv()
	}

	return config.Load(configPath)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "candystore",
		Short: "Runs candy store scenarios against the store's domain layer",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flagSet := flag.NewFlagSet("candystore", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	configPath := flagSet.String("c", "config.yml", "The config file path")
	_ = flagSet.Parse(os.Args[1:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		simulateCommand(cfg),
		validateCommand(cfg),
	)

	err = rootCmd.ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

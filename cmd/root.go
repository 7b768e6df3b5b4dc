package cmd

import (
	"context"
	"fmt"
	"os"

	"vault-manager/core/config"
	"vault-manager/core/logger"
	"vault-manager/core/vault"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Persistent flags shared by every subcommand; flags override the
	// environment-derived configuration.
	dryRun         bool
	skipTLS        bool
	vaultAddr      string
	vaultToken     string
	vaultConfigDir string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vault-manager",
	Short: "Vault configuration manager",
	Long: `Vault Manager converges a Vault instance toward a declared, file-based
configuration: auth methods, access policies, and KV secret trees.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Log mutations without applying them")
	RootCmd.PersistentFlags().BoolVar(&skipTLS, "skip-tls", false, "Skip TLS certificate verification")
	RootCmd.PersistentFlags().StringVar(&vaultAddr, "vault-addr", "", "Vault address (overrides VAULT_ADDR)")
	RootCmd.PersistentFlags().StringVar(&vaultToken, "vault-token", "", "Vault token (overrides VAULT_TOKEN)")
	RootCmd.PersistentFlags().StringVar(&vaultConfigDir, "vault-config", "", "Declared configuration directory (overrides VAULT_CONFIG)")
}

// loadRunConfig loads the environment configuration and applies flag
// overrides.
func loadRunConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if vaultAddr != "" {
		cfg.Vault.Addr = vaultAddr
	}
	if vaultToken != "" {
		cfg.Vault.Token = vaultToken
	}
	if vaultConfigDir != "" {
		cfg.Vault.ConfigDir = vaultConfigDir
	}
	if skipTLS {
		cfg.Vault.SkipTLS = true
	}
	return cfg, nil
}

// newRunLogger builds the logger for a single run, tagged with a run id.
func newRunLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.WithRunID(l), nil
}

// newClient builds and authenticates a client for the primary service.
func newClient(ctx context.Context, cfg *config.Config, log *zap.Logger) (vault.Client, error) {
	client, err := vault.NewClient(vault.Options{
		Addr:    cfg.Vault.Addr,
		Token:   cfg.Vault.Token,
		SkipTLS: cfg.Vault.SkipTLS,
		Dry:     dryRun,
	}, log)
	if err != nil {
		return nil, err
	}
	if err := client.Authenticate(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

package cmd

import (
	"context"
	"fmt"

	"vault-manager/feature/auth"
	"vault-manager/feature/auth/methods"

	"github.com/spf13/cobra"
)

var authPush bool

// authCmd manages auth methods.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage auth methods",
	Long: `Converge the auth methods of a Vault instance toward the set declared in
auth-methods.yml inside the configuration directory.

Extraneous mounts are only disabled when the declared document sets
auth-methods-deletion: true.

Examples:
  # Apply the declared auth methods
  vault-manager auth --push

  # See what would change without mutating anything
  vault-manager auth --push --dry-run`,
	RunE: runAuth,
}

func init() {
	authCmd.Flags().BoolVar(&authPush, "push", false, "Push declared auth methods to Vault")
	RootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	if !authPush {
		return fmt.Errorf("you must specify a command: --push")
	}

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	if err := cfg.Vault.Validate(); err != nil {
		return err
	}

	log, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Configuration errors must surface before any remote call.
	declared, err := auth.LoadDeclared(cfg.Vault.ConfigDir)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg, log)
	if err != nil {
		return err
	}

	reconciler := auth.NewReconciler(client, methods.Default(client, log), log)
	return reconciler.Push(ctx, declared)
}

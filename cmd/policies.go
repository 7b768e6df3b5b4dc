package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"vault-manager/feature/policies"

	"github.com/spf13/cobra"
)

var (
	policiesPush bool
	policiesPull bool
)

// policiesCmd manages access policies.
var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "Manage access policies",
	Long: `Synchronize access policies between the local policies directory
(<config-dir>/policies/<category>/<name>.hcl) and the remote service.

Push deletes remote policies that follow the managed naming pattern but no
longer exist locally, then upserts every local policy. Pull mirrors every
managed remote policy into the local layout. Remote names outside the
pattern are never touched.

Examples:
  # Apply local policies to Vault
  vault-manager policies --push

  # Mirror remote policies into the local directory
  vault-manager policies --pull`,
	RunE: runPolicies,
}

func init() {
	policiesCmd.Flags().BoolVar(&policiesPush, "push", false, "Push local policies to Vault")
	policiesCmd.Flags().BoolVar(&policiesPull, "pull", false, "Pull remote policies from Vault")
	RootCmd.AddCommand(policiesCmd)
}

func runPolicies(cmd *cobra.Command, args []string) error {
	if policiesPush == policiesPull {
		return fmt.Errorf("you must specify exactly one of --push or --pull")
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

	root := filepath.Join(cfg.Vault.ConfigDir, "policies")
	if err := policies.EnsureRoot(root); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg, log)
	if err != nil {
		return err
	}

	reconciler := policies.NewReconciler(client, root, log)
	if policiesPull {
		return reconciler.Pull(ctx)
	}
	return reconciler.Push(ctx)
}

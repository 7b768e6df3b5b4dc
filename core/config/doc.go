// Package config provides configuration management for vault-manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults sourced from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Vault: secrets-service address, token, declared-configuration directory
//     and export-target coordinates (VAULT_ADDR, VAULT_TOKEN, VAULT_CONFIG,
//     VAULT_TARGET_ADDR, VAULT_TARGET_TOKEN)
//   - Storage: S3/MinIO credentials and bucket settings for KV snapshots
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Vault.Addr)
package config

// Package utils provides common utility functions for vault-manager.
// It includes loose scalar conversion helpers used to normalize values
// that arrive untyped from YAML documents or remote API responses.
package utils

// Package file provides file-based implementations of driven port interfaces.
// These adapters read and persist data on the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - RegistryFile: TOML sample registry with [[data]] and [[mc]] tables
package file

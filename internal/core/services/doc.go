// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters).
//
//   - DumpService: the fetch-and-dump driver
//   - RegistryService: loads and merges the sample registry
//   - HistoryService: read access to recorded runs
//   - SettingsService: typed access to the TOML configuration
//
// Services are pure Go with no CGO dependencies.
package services

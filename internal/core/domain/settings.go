package domain

// DefaultCatalogURL is the global DBS reader endpoint.
const DefaultCatalogURL = "https://cmsweb.cern.ch/dbs/prod/global/DBSReader"

// Defaults for the remaining settings.
const (
	DefaultOutputDir    = "./NanoAODv7"
	DefaultRegistryPath = "samples.toml"
)

// CatalogSettings configures the catalog reader client.
type CatalogSettings struct {
	// URL is the reader base URL.
	URL string

	// RatePerSecond paces catalog requests. Zero disables pacing.
	RatePerSecond float64

	// TimeoutSeconds bounds each request. Zero means no timeout.
	TimeoutSeconds int
}

// OutputSettings configures where file lists are written.
type OutputSettings struct {
	// Dir is the output directory.
	Dir string

	// CreateDir creates Dir when missing instead of failing on the first write.
	CreateDir bool
}

// RegistrySettings locates the sample registry file.
type RegistrySettings struct {
	Path string
}

// HistorySettings controls run history persistence.
type HistorySettings struct {
	// Enabled stores runs in the on-disk history database.
	// When false, runs are kept in memory for the process lifetime only.
	Enabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Catalog  CatalogSettings
	Output   OutputSettings
	Registry RegistrySettings
	History  HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The output directory is not created automatically by default.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Catalog: CatalogSettings{
			URL: DefaultCatalogURL,
		},
		Output: OutputSettings{
			Dir: DefaultOutputDir,
		},
		Registry: RegistrySettings{
			Path: DefaultRegistryPath,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

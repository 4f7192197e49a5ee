package domain

// XRootDPrefix is the storage-access prefix prepended to every logical file name.
// Analysis jobs open the resulting URLs through the CMS global redirector.
const XRootDPrefix = "root://xrootd-cms.infn.it/"

// ListFileSuffix is the extension of every written file list.
const ListFileSuffix = ".txt"

// Sample pairs a short human-readable name with a catalog dataset identifier.
type Sample struct {
	// ShortName is unique within a registry and names the output file.
	ShortName string

	// Dataset is passed to the catalog verbatim.
	Dataset string
}

// SampleSets holds the two ordered sample groups read from a registry source.
type SampleSets struct {
	// Data holds collision-data samples. Merged first.
	Data []Sample

	// MC holds Monte-Carlo samples. Merged second, so they win collisions.
	MC []Sample
}

// FileRecord is one file of a dataset as returned by the catalog.
// Only the logical file name is consumed.
type FileRecord struct {
	LogicalFileName string
}

// AccessURL prepends the storage-access prefix to a logical file name.
// No other transformation is applied.
func AccessURL(lfn string) string {
	return XRootDPrefix + lfn
}

// ListFileName returns the output file name for a sample short name.
func ListFileName(shortName string) string {
	return shortName + ListFileSuffix
}

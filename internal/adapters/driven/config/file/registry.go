package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
)

// Ensure RegistryFile implements the interface.
var _ driven.RegistrySource = (*RegistryFile)(nil)

// Registry file sections.
const (
	sectionData = "data"
	sectionMC   = "mc"
)

// registryDocument is the on-disk shape. Arrays of tables keep declaration
// order, which plain TOML tables would not.
type registryDocument struct {
	Data []registryRow `toml:"data"`
	MC   []registryRow `toml:"mc"`
}

type registryRow struct {
	Name    string `toml:"name"`
	Dataset string `toml:"dataset"`
}

// RegistryFile reads sample groups from a TOML file:
//
//	[[data]]
//	name    = "ParkingBPH1_2018A"
//	dataset = "/ParkingBPH1/Run2018A-02Apr2020-v1/NANOAOD"
//
//	[[mc]]
//	name    = "TTTo2L2Nu"
//	dataset = "/TTTo2L2Nu_TuneCP5_13TeV-powheg-pythia8/.../NANOAODSIM"
type RegistryFile struct {
	path string
}

// NewRegistryFile creates a registry source for path.
func NewRegistryFile(path string) *RegistryFile {
	return &RegistryFile{path: path}
}

// Path returns the registry file path.
func (r *RegistryFile) Path() string {
	return r.path
}

// Load reads the data and mc groups. Rows missing a name or dataset are
// configuration errors; dataset identifiers are otherwise not checked.
func (r *RegistryFile) Load() (domain.SampleSets, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		return domain.SampleSets{}, fmt.Errorf("read registry: %w", err)
	}
	return ParseRegistry(content)
}

// ParseRegistry decodes registry TOML content.
func ParseRegistry(content []byte) (domain.SampleSets, error) {
	var doc registryDocument
	if err := toml.Unmarshal(content, &doc); err != nil {
		return domain.SampleSets{}, fmt.Errorf("parse registry: %w", err)
	}

	data, err := toSamples(sectionData, doc.Data)
	if err != nil {
		return domain.SampleSets{}, err
	}
	mc, err := toSamples(sectionMC, doc.MC)
	if err != nil {
		return domain.SampleSets{}, err
	}

	return domain.SampleSets{Data: data, MC: mc}, nil
}

func toSamples(section string, rows []registryRow) ([]domain.Sample, error) {
	samples := make([]domain.Sample, 0, len(rows))
	for i, row := range rows {
		if row.Name == "" {
			return nil, fmt.Errorf("registry [[%s]] #%d: %w: missing name", section, i+1, domain.ErrInvalidInput)
		}
		if row.Dataset == "" {
			return nil, fmt.Errorf("registry [[%s]] %s: %w: missing dataset", section, row.Name, domain.ErrInvalidInput)
		}
		samples = append(samples, domain.Sample{ShortName: row.Name, Dataset: row.Dataset})
	}
	return samples, nil
}

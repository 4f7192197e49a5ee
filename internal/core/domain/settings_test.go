package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, "https://cmsweb.cern.ch/dbs/prod/global/DBSReader", settings.Catalog.URL)
	assert.Zero(t, settings.Catalog.RatePerSecond)
	assert.Zero(t, settings.Catalog.TimeoutSeconds)
	assert.Equal(t, "./NanoAODv7", settings.Output.Dir)
	assert.False(t, settings.Output.CreateDir, "missing output dir must fail by default")
	assert.Equal(t, "samples.toml", settings.Registry.Path)
	assert.True(t, settings.History.Enabled)
}

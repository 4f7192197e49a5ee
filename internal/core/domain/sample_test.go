package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessURL(t *testing.T) {
	tests := []struct {
		name     string
		lfn      string
		expected string
	}{
		{
			name:     "store path keeps leading slash",
			lfn:      "/store/f1.root",
			expected: "root://xrootd-cms.infn.it//store/f1.root",
		},
		{
			name:     "relative path",
			lfn:      "store/f2.root",
			expected: "root://xrootd-cms.infn.it/store/f2.root",
		},
		{
			name:     "empty path yields bare prefix",
			lfn:      "",
			expected: "root://xrootd-cms.infn.it/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AccessURL(tt.lfn))
		})
	}
}

func TestAccessURL_Deterministic(t *testing.T) {
	lfn := "/store/data/Run2018A/ParkingBPH1/NANOAOD/02Apr2020-v1/10000/ABC.root"
	assert.Equal(t, AccessURL(lfn), AccessURL(lfn))
}

func TestListFileName(t *testing.T) {
	assert.Equal(t, "TTTo2L2Nu.txt", ListFileName("TTTo2L2Nu"))
	assert.Equal(t, ".txt", ListFileName(""))
}

package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samplelist/internal/core/domain"
)

func TestCatalog_ListFiles_PreservesOrder(t *testing.T) {
	catalog := NewCatalog()
	catalog.AddDataset("/MC/Set2", "/store/f2.root", "/store/f3.root")

	records, err := catalog.ListFiles(context.Background(), "/MC/Set2")

	require.NoError(t, err)
	assert.Equal(t, []domain.FileRecord{
		{LogicalFileName: "/store/f2.root"},
		{LogicalFileName: "/store/f3.root"},
	}, records)
}

func TestCatalog_ListFiles_EmptyDataset(t *testing.T) {
	catalog := NewCatalog()
	catalog.AddDataset("/Empty/Set")

	records, err := catalog.ListFiles(context.Background(), "/Empty/Set")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCatalog_ListFiles_Unknown(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.ListFiles(context.Background(), "/Unknown/Set")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_FailDataset(t *testing.T) {
	catalog := NewCatalog()
	catalog.AddDataset("/Data/Set1", "/store/f1.root")
	boom := errors.New("service unavailable")
	catalog.FailDataset("/Data/Set1", boom)

	_, err := catalog.ListFiles(context.Background(), "/Data/Set1")

	assert.ErrorIs(t, err, boom)
}

func TestCatalog_Queries(t *testing.T) {
	catalog := NewCatalog()
	catalog.AddDataset("/A")
	ctx := context.Background()

	_, _ = catalog.ListFiles(ctx, "/A")
	_, _ = catalog.ListFiles(ctx, "/B")

	assert.Equal(t, []string{"/A", "/B"}, catalog.Queries())
	assert.Equal(t, ":memory:", catalog.Endpoint())
}

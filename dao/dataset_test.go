package dao

import (
	"errors"
	"testing"

	"metaapi/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDatasetsFilters(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)

	all, err := s.ListDatasets(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byProject, err := s.ListDatasets(ctx, i64p(2), nil)
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, "ds-b", byProject[0].Name)

	none, err := s.ListDatasets(ctx, i64p(1), i64p(200))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetDatasetWithMetadata(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)
	create(t, db, &model.DatasetMetadata{DatasetID: 100, Key: "owner", Value: "lab"})

	ds, err := s.GetDatasetWithMetadata(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, "ds-a", ds.Name)
	require.Len(t, ds.Metadata, 1)
	assert.Equal(t, "owner", ds.Metadata[0].Key)

	_, err = s.GetDatasetWithMetadata(ctx, 100, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetDatasetWithoutMetadataHasEmptyList(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)

	ds, err := s.GetDatasetWithMetadata(ctx, 200, 2)
	require.NoError(t, err)
	assert.NotNil(t, ds.Metadata)
	assert.Empty(t, ds.Metadata)
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)

	first, err := s.UpsertDatasetMetadata(ctx, 5, []model.KeyValue{{Key: "k", Value: "v1"}})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := s.UpsertDatasetMetadata(ctx, 5, []model.KeyValue{{Key: "k", Value: "v2"}})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "v2", second[0].Value)

	var count int64
	require.NoError(t, db.Model(&model.DatasetMetadata{}).
		Where("dataset_id = ? AND key = ?", 5, "k").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertInsertsNewKey(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)
	create(t, db, &model.DatasetMetadata{DatasetID: 100, Key: "owner", Value: "lab"})

	md, err := s.UpsertDatasetMetadata(ctx, 100, []model.KeyValue{{Key: model.KeyLastSizeUpdate, Value: "2024-01-01"}})
	require.NoError(t, err)
	require.Len(t, md, 2)
	assert.Equal(t, "owner", md[0].Key)
	assert.Equal(t, model.KeyLastSizeUpdate, md[1].Key)
	assert.Equal(t, "2024-01-01", md[1].Value)
}

func TestUpsertGroupAndRepeatedKey(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)

	md, err := s.UpsertDatasetMetadata(ctx, 100, []model.KeyValue{
		{Key: model.KeyRawFileSize, Value: "10"},
		{Key: model.KeyLastSizeUpdate, Value: "today"},
		{Key: model.KeyRawFileSize, Value: "20"},
	})
	require.NoError(t, err)
	require.Len(t, md, 2)
	assert.Equal(t, model.KeyRawFileSize, md[0].Key)
	assert.Equal(t, "20", md[0].Value)
	assert.Equal(t, "today", md[1].Value)
}

func TestUpsertLeavesOtherDatasetsAlone(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)
	create(t, db, &model.DatasetMetadata{DatasetID: 200, Key: "k", Value: "keep"})

	_, err := s.UpsertDatasetMetadata(ctx, 100, []model.KeyValue{{Key: "k", Value: "new"}})
	require.NoError(t, err)

	other, err := s.DatasetMetadata(ctx, 200)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "keep", other[0].Value)
}

func TestCreateDataset(t *testing.T) {
	s, db := newTestStore(t)
	seed(t, db)

	ds, err := s.CreateDataset(ctx, &model.DatasetCreate{
		ProjectID: 1, Name: "new",
		Metadata: []model.KeyValue{{Key: "a", Value: "1"}},
	})
	require.NoError(t, err)
	assert.NotZero(t, ds.ID)
	require.Len(t, ds.Metadata, 1)
	assert.Equal(t, ds.ID, ds.Metadata[0].DatasetID)

	got, err := s.GetDatasetWithMetadata(ctx, ds.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, ds.Metadata, got.Metadata)
}

func TestStoreErrorOnMissingTable(t *testing.T) {
	s, db := newTestStore(t)
	require.NoError(t, db.Migrator().DropTable(&model.Project{}))

	_, err := s.ListProjects(ctx, nil)
	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "list projects", se.Op)
	assert.False(t, errors.Is(err, ErrNotFound))
}

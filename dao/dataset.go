package dao

import (
	"context"

	"metaapi/dao/query"
	"metaapi/model"

	"gorm.io/gorm"
)

func (s *Store) ListDatasets(ctx context.Context, projectID, datasetID *int64) ([]model.Dataset, error) {
	q, args := query.Where("SELECT id, project_id, name FROM datasets",
		query.Eq("project_id", projectID),
		query.Eq("id", datasetID),
	)
	datasets := []model.Dataset{}
	if err := s.db.WithContext(ctx).Raw(q+" ORDER BY id", args...).Scan(&datasets).Error; err != nil {
		return nil, classify("list datasets", err)
	}
	return datasets, nil
}

// GetDatasetWithMetadata returns ErrNotFound when no dataset matches both ids.
func (s *Store) GetDatasetWithMetadata(ctx context.Context, datasetID, projectID int64) (*model.DatasetWithMetadata, error) {
	var ds model.Dataset
	err := s.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", datasetID, projectID).
		Take(&ds).Error
	if err != nil {
		return nil, classify("get dataset", err)
	}
	md, err := s.DatasetMetadata(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	return &model.DatasetWithMetadata{Dataset: ds, Metadata: md}, nil
}

func (s *Store) DatasetMetadata(ctx context.Context, datasetID int64) ([]model.DatasetMetadata, error) {
	md := []model.DatasetMetadata{}
	err := s.db.WithContext(ctx).
		Where("dataset_id = ?", datasetID).
		Order("id").
		Find(&md).Error
	if err != nil {
		return nil, classify("list dataset metadata", err)
	}
	return md, nil
}

// CreateDataset inserts the dataset and its metadata in one transaction.
func (s *Store) CreateDataset(ctx context.Context, req *model.DatasetCreate) (*model.DatasetWithMetadata, error) {
	out := &model.DatasetWithMetadata{
		Dataset:  model.Dataset{ProjectID: req.ProjectID, Name: req.Name},
		Metadata: []model.DatasetMetadata{},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&out.Dataset).Error; err != nil {
			return err
		}
		for _, kv := range req.Metadata {
			out.Metadata = append(out.Metadata, model.DatasetMetadata{
				DatasetID: out.ID, Key: kv.Key, Value: kv.Value,
			})
		}
		if len(out.Metadata) == 0 {
			return nil
		}
		return tx.Create(&out.Metadata).Error
	})
	if err != nil {
		return nil, classify("create dataset", err)
	}
	return out, nil
}

// UpsertDatasetMetadata sets each pair on the dataset, updating the existing
// (dataset_id, key) row in place or inserting one when absent. All pairs are
// applied in a single transaction; on postgres concurrent upserts for the
// same dataset are serialised by a transaction-scoped advisory lock, so the
// select-then-write sequence cannot lose an update or insert a duplicate key.
// Pairs are applied in order, so a repeated key ends with its last value.
//
// The dataset id is not checked; the returned slice is the dataset's full
// metadata after the write.
func (s *Store) UpsertDatasetMetadata(ctx context.Context, datasetID int64, pairs []model.KeyValue) ([]model.DatasetMetadata, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isPostgres(tx) {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", datasetID).Error; err != nil {
				return err
			}
		}
		for _, kv := range pairs {
			if err := upsertDatasetMetadata(tx, datasetID, kv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify("upsert dataset metadata", err)
	}
	return s.DatasetMetadata(ctx, datasetID)
}

func upsertDatasetMetadata(tx *gorm.DB, datasetID int64, kv model.KeyValue) error {
	var row model.DatasetMetadata
	res := forUpdate(tx).
		Where("dataset_id = ? AND key = ?", datasetID, kv.Key).
		Order("id").
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return tx.Model(&row).Update("value", kv.Value).Error
	}
	return tx.Create(&model.DatasetMetadata{DatasetID: datasetID, Key: kv.Key, Value: kv.Value}).Error
}

package dao

import (
	"context"
	"database/sql"

	"metaapi/model"
	"metaapi/tree"

	"gorm.io/gorm"
)

type rawFileRow struct {
	RawFileID   int64          `gorm:"column:raw_file_id"`
	Path        string         `gorm:"column:path"`
	LinkID      int64          `gorm:"column:link_id"`
	SampleID    sql.NullInt64  `gorm:"column:sample_id"`
	ExtSampleID sql.NullString `gorm:"column:ext_sample_id"`
	MetaID      sql.NullInt64  `gorm:"column:meta_id"`
	MetaKey     sql.NullString `gorm:"column:meta_key"`
	MetaValue   sql.NullString `gorm:"column:meta_value"`
}

const rawFilesWithSamples = `SELECT rf.id AS raw_file_id, rf.path, rfm.id AS link_id,
	s.id AS sample_id, s.ext_sample_id,
	sm.id AS meta_id, sm.key AS meta_key, sm.value AS meta_value
	FROM raw_files rf
	JOIN raw_files_metadata rfm ON rf.id = rfm.raw_file_id AND rfm.metadata_key = ?
	LEFT JOIN samples s ON rfm.metadata_value = CAST(s.id AS TEXT)
	LEFT JOIN samples_metadata sm ON s.id = sm.sample_id
	WHERE rf.dataset_id = ?
	ORDER BY rf.id, rfm.id, sm.id`

// RawFilesWithMetadata returns the raw files of a dataset that carry a
// sample_id metadata entry, resolved to that sample and its metadata. Files
// without the entry are omitted; a sample_id naming no sample yields a null
// sample. When a file carries several sample_id entries the first one wins.
func (s *Store) RawFilesWithMetadata(ctx context.Context, datasetID int64) ([]model.FileResponse, error) {
	var meta tree.Run[int64]
	var link int64
	files, err := tree.Fold(scan[rawFileRow](ctx, s.db, rawFilesWithSamples, model.KeySampleID, datasetID),
		func(r rawFileRow) int64 { return r.RawFileID },
		func(r rawFileRow) model.FileResponse {
			meta.Reset()
			link = r.LinkID
			f := model.FileResponse{
				ID:             r.RawFileID,
				Path:           r.Path,
				SampleMetadata: []model.SampleMetadata{},
			}
			if r.SampleID.Valid {
				id := r.SampleID.Int64
				f.SampleID = &id
				f.ExtSampleID = nullString(r.ExtSampleID)
			}
			return f
		},
		func(f *model.FileResponse, r rawFileRow) {
			if r.LinkID != link || !meta.Next(r.MetaID.Int64, r.MetaID.Valid) {
				return
			}
			f.SampleMetadata = append(f.SampleMetadata, model.SampleMetadata{
				ID:       r.MetaID.Int64,
				SampleID: r.SampleID.Int64,
				Key:      r.MetaKey.String,
				Value:    r.MetaValue.String,
			})
		})
	if err != nil {
		return nil, classify("list raw files", err)
	}
	return files, nil
}

// AddRawFiles inserts every file and its metadata in one transaction and
// returns the new ids in input order. A failure leaves nothing behind.
func (s *Store) AddRawFiles(ctx context.Context, files []model.FileCreate) ([]int64, error) {
	ids := make([]int64, 0, len(files))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, f := range files {
			rf := model.RawFile{DatasetID: f.DatasetID, Path: f.Path}
			if err := tx.Create(&rf).Error; err != nil {
				return err
			}
			ids = append(ids, rf.ID)
			if len(f.Metadata) == 0 {
				continue
			}
			md := make([]model.RawFileMetadata, 0, len(f.Metadata))
			for _, m := range f.Metadata {
				md = append(md, model.RawFileMetadata{
					RawFileID:     rf.ID,
					MetadataKey:   m.MetadataKey,
					MetadataValue: m.MetadataValue,
				})
			}
			if err := tx.Create(&md).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify("add raw files", err)
	}
	return ids, nil
}

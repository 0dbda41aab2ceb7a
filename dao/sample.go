package dao

import (
	"context"
	"database/sql"

	"metaapi/dao/query"
	"metaapi/model"
	"metaapi/tree"

	"gorm.io/gorm"
)

type sampleRow struct {
	SampleID        int64          `gorm:"column:sample_id"`
	PatientID       int64          `gorm:"column:patient_id"`
	ExtSampleID     string         `gorm:"column:ext_sample_id"`
	ExtSampleURL    string         `gorm:"column:ext_sample_url"`
	MetaID          sql.NullInt64  `gorm:"column:meta_id"`
	MetaKey         sql.NullString `gorm:"column:meta_key"`
	MetaValue       sql.NullString `gorm:"column:meta_value"`
	ProjectID       int64          `gorm:"column:project_id"`
	ExtPatientID    string         `gorm:"column:ext_patient_id"`
	ExtPatientURL   string         `gorm:"column:ext_patient_url"`
	PublicPatientID sql.NullString `gorm:"column:public_patient_id"`
}

// Samples returns the samples of a project, or only sampleID when it is
// non-zero, each with its metadata and owning patient.
func (s *Store) Samples(ctx context.Context, projectID, sampleID int64) ([]model.SampleWithPatient, error) {
	var only *int64
	if sampleID != 0 {
		only = &sampleID
	}
	q, args := query.Where(`SELECT s.id AS sample_id, s.patient_id, s.ext_sample_id, s.ext_sample_url,
		sm.id AS meta_id, sm.key AS meta_key, sm.value AS meta_value,
		p.project_id, p.ext_patient_id, p.ext_patient_url, p.public_patient_id
		FROM samples s
		LEFT JOIN samples_metadata sm ON s.id = sm.sample_id
		LEFT JOIN patients p ON s.patient_id = p.id`,
		query.Eq("p.project_id", &projectID),
		query.Eq("s.id", only),
	)
	q += " ORDER BY s.id, sm.id"

	var meta tree.Run[int64]
	samples, err := tree.Fold(scan[sampleRow](ctx, s.db, q, args...),
		func(r sampleRow) int64 { return r.SampleID },
		func(r sampleRow) model.SampleWithPatient {
			meta.Reset()
			return model.SampleWithPatient{
				Sample: model.Sample{
					ID:           r.SampleID,
					PatientID:    r.PatientID,
					ExtSampleID:  r.ExtSampleID,
					ExtSampleURL: r.ExtSampleURL,
				},
				Metadata: []model.SampleMetadata{},
				Patient: model.Patient{
					ID:              r.PatientID,
					ProjectID:       r.ProjectID,
					ExtPatientID:    r.ExtPatientID,
					ExtPatientURL:   r.ExtPatientURL,
					PublicPatientID: nullString(r.PublicPatientID),
				},
			}
		},
		func(smp *model.SampleWithPatient, r sampleRow) {
			if !meta.Next(r.MetaID.Int64, r.MetaID.Valid) {
				return
			}
			smp.Metadata = append(smp.Metadata, model.SampleMetadata{
				ID:       r.MetaID.Int64,
				SampleID: r.SampleID,
				Key:      r.MetaKey.String,
				Value:    r.MetaValue.String,
			})
		})
	if err != nil {
		return nil, classify("list samples", err)
	}
	return samples, nil
}

// CreateSample inserts the sample and its metadata in one transaction.
func (s *Store) CreateSample(ctx context.Context, req *model.SampleCreate) (*model.SampleWithoutPatient, error) {
	out := &model.SampleWithoutPatient{
		Sample: model.Sample{
			PatientID:    req.PatientID,
			ExtSampleID:  req.ExtSampleID,
			ExtSampleURL: req.ExtSampleURL,
		},
		Metadata: []model.SampleMetadata{},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&out.Sample).Error; err != nil {
			return err
		}
		for _, kv := range req.Metadata {
			out.Metadata = append(out.Metadata, model.SampleMetadata{
				SampleID: out.ID, Key: kv.Key, Value: kv.Value,
			})
		}
		if len(out.Metadata) == 0 {
			return nil
		}
		return tx.Create(&out.Metadata).Error
	})
	if err != nil {
		return nil, classify("create sample", err)
	}
	return out, nil
}

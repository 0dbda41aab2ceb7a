package dao

import (
	"context"
	"database/sql"

	"metaapi/dao/query"
	"metaapi/model"
	"metaapi/tree"

	"gorm.io/gorm"
)

// ListPatients returns patients with the number of samples each owns.
func (s *Store) ListPatients(ctx context.Context, projectID *int64) ([]model.PatientWithSampleCount, error) {
	q, args := query.Where(`SELECT p.id, p.project_id, p.ext_patient_id, p.ext_patient_url,
		p.public_patient_id, COUNT(s.id) AS sample_count
		FROM patients p
		LEFT JOIN samples s ON p.id = s.patient_id`,
		query.Eq("p.project_id", projectID),
	)
	patients := []model.PatientWithSampleCount{}
	err := s.db.WithContext(ctx).Raw(q+" GROUP BY p.id ORDER BY p.id", args...).Scan(&patients).Error
	if err != nil {
		return nil, classify("list patients", err)
	}
	return patients, nil
}

type patientSampleRow struct {
	PatientID       int64          `gorm:"column:patient_id"`
	ProjectID       int64          `gorm:"column:project_id"`
	ExtPatientID    string         `gorm:"column:ext_patient_id"`
	ExtPatientURL   string         `gorm:"column:ext_patient_url"`
	PublicPatientID sql.NullString `gorm:"column:public_patient_id"`
	SampleID        sql.NullInt64  `gorm:"column:sample_id"`
	ExtSampleID     sql.NullString `gorm:"column:ext_sample_id"`
	ExtSampleURL    sql.NullString `gorm:"column:ext_sample_url"`
	MetaID          sql.NullInt64  `gorm:"column:meta_id"`
	MetaKey         sql.NullString `gorm:"column:meta_key"`
	MetaValue       sql.NullString `gorm:"column:meta_value"`
}

type patientMetaRow struct {
	PatientID int64  `gorm:"column:patient_id"`
	ID        int64  `gorm:"column:id"`
	Key       string `gorm:"column:key"`
	Value     string `gorm:"column:value"`
}

// PatientsWithSamples returns the patients of a project, or only patientID
// when it is non-zero, each with its metadata and its samples' metadata.
func (s *Store) PatientsWithSamples(ctx context.Context, projectID, patientID int64) ([]model.PatientWithSamples, error) {
	var only *int64
	if patientID != 0 {
		only = &patientID
	}
	conds := []query.Cond{query.Eq("p.project_id", &projectID), query.Eq("p.id", only)}

	q, args := query.Where(`SELECT p.id AS patient_id, p.project_id, p.ext_patient_id, p.ext_patient_url,
		p.public_patient_id,
		s.id AS sample_id, s.ext_sample_id, s.ext_sample_url,
		sm.id AS meta_id, sm.key AS meta_key, sm.value AS meta_value
		FROM patients p
		LEFT JOIN samples s ON p.id = s.patient_id
		LEFT JOIN samples_metadata sm ON s.id = sm.sample_id`, conds...)
	q += " ORDER BY p.id, s.id, sm.id"

	var samples, meta tree.Run[int64]
	patients, err := tree.Fold(scan[patientSampleRow](ctx, s.db, q, args...),
		func(r patientSampleRow) int64 { return r.PatientID },
		func(r patientSampleRow) model.PatientWithSamples {
			samples.Reset()
			meta.Reset()
			return model.PatientWithSamples{
				Patient: model.Patient{
					ID:              r.PatientID,
					ProjectID:       r.ProjectID,
					ExtPatientID:    r.ExtPatientID,
					ExtPatientURL:   r.ExtPatientURL,
					PublicPatientID: nullString(r.PublicPatientID),
				},
				Metadata: []model.PatientMetadata{},
				Samples:  []model.SampleWithoutPatient{},
			}
		},
		func(p *model.PatientWithSamples, r patientSampleRow) {
			if samples.Next(r.SampleID.Int64, r.SampleID.Valid) {
				meta.Reset()
				p.Samples = append(p.Samples, model.SampleWithoutPatient{
					Sample: model.Sample{
						ID:           r.SampleID.Int64,
						PatientID:    r.PatientID,
						ExtSampleID:  r.ExtSampleID.String,
						ExtSampleURL: r.ExtSampleURL.String,
					},
					Metadata: []model.SampleMetadata{},
				})
			}
			if !r.SampleID.Valid || !meta.Next(r.MetaID.Int64, r.MetaID.Valid) {
				return
			}
			cur := &p.Samples[len(p.Samples)-1]
			cur.Metadata = append(cur.Metadata, model.SampleMetadata{
				ID:       r.MetaID.Int64,
				SampleID: r.SampleID.Int64,
				Key:      r.MetaKey.String,
				Value:    r.MetaValue.String,
			})
		})
	if err != nil {
		return nil, classify("list patients with samples", err)
	}
	if len(patients) == 0 {
		return patients, nil
	}

	q, args = query.Where(`SELECT pm.patient_id, pm.id, pm.key, pm.value
		FROM patients_metadata pm
		JOIN patients p ON p.id = pm.patient_id`, conds...)
	q += " ORDER BY pm.patient_id, pm.id"

	groups, err := tree.Fold(scan[patientMetaRow](ctx, s.db, q, args...),
		func(r patientMetaRow) int64 { return r.PatientID },
		func(patientMetaRow) []model.PatientMetadata { return []model.PatientMetadata{} },
		func(md *[]model.PatientMetadata, r patientMetaRow) {
			*md = append(*md, model.PatientMetadata{ID: r.ID, PatientID: r.PatientID, Key: r.Key, Value: r.Value})
		})
	if err != nil {
		return nil, classify("list patient metadata", err)
	}

	index := make(map[int64]int, len(patients))
	for i := range patients {
		index[patients[i].ID] = i
	}
	for _, md := range groups {
		if i, ok := index[md[0].PatientID]; ok {
			patients[i].Metadata = md
		}
	}
	return patients, nil
}

// CreatePatient inserts the patient and its metadata in one transaction.
func (s *Store) CreatePatient(ctx context.Context, req *model.PatientCreate) (*model.PatientWithSamples, error) {
	out := &model.PatientWithSamples{
		Patient: model.Patient{
			ProjectID:       req.ProjectID,
			ExtPatientID:    req.ExtPatientID,
			ExtPatientURL:   req.ExtPatientURL,
			PublicPatientID: req.PublicPatientID,
		},
		Metadata: []model.PatientMetadata{},
		Samples:  []model.SampleWithoutPatient{},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&out.Patient).Error; err != nil {
			return err
		}
		for _, kv := range req.Metadata {
			out.Metadata = append(out.Metadata, model.PatientMetadata{
				PatientID: out.ID, Key: kv.Key, Value: kv.Value,
			})
		}
		if len(out.Metadata) == 0 {
			return nil
		}
		return tx.Create(&out.Metadata).Error
	})
	if err != nil {
		return nil, classify("create patient", err)
	}
	return out, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

package dao

import (
	"context"
	"testing"

	"metaapi/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return NewStore(db), db
}

func create(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}

func strp(s string) *string { return &s }

func i64p(v int64) *int64 { return &v }

// seed builds two projects:
//
//	project 1: patient 1 (2 metadata) with samples 10 (2 metadata) and 11 (none),
//	           patient 2 with no metadata and no samples, dataset 100.
//	project 2: patient 3 with sample 30, dataset 200.
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	create(t, db,
		&model.Project{ID: 1, Name: "alpha", Status: "active"},
		&model.Project{ID: 2, Name: "beta", Status: "archived"},
		&model.Dataset{ID: 100, ProjectID: 1, Name: "ds-a"},
		&model.Dataset{ID: 200, ProjectID: 2, Name: "ds-b"},
		&model.Patient{ID: 1, ProjectID: 1, ExtPatientID: "P1", ExtPatientURL: "u1", PublicPatientID: strp("pub1")},
		&model.Patient{ID: 2, ProjectID: 1, ExtPatientID: "P2", ExtPatientURL: "u2"},
		&model.Patient{ID: 3, ProjectID: 2, ExtPatientID: "P3", ExtPatientURL: "u3"},
		&model.PatientMetadata{ID: 1, PatientID: 1, Key: "sex", Value: "f"},
		&model.PatientMetadata{ID: 2, PatientID: 1, Key: "age", Value: "41"},
		&model.Sample{ID: 10, PatientID: 1, ExtSampleID: "S10", ExtSampleURL: "s10"},
		&model.Sample{ID: 11, PatientID: 1, ExtSampleID: "S11", ExtSampleURL: "s11"},
		&model.Sample{ID: 30, PatientID: 3, ExtSampleID: "S30", ExtSampleURL: "s30"},
		&model.SampleMetadata{ID: 1, SampleID: 10, Key: "tissue", Value: "liver"},
		&model.SampleMetadata{ID: 2, SampleID: 10, Key: "stage", Value: "II"},
		&model.SampleMetadata{ID: 3, SampleID: 30, Key: "tissue", Value: "lung"},
	)
}

var ctx = context.Background()

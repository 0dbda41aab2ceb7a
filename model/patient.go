package model

type Patient struct {
	ID              int64   `gorm:"primaryKey" json:"id"`
	ProjectID       int64   `gorm:"index;not null" json:"project_id"`
	ExtPatientID    string  `gorm:"type:varchar(256);not null" json:"ext_patient_id"`
	ExtPatientURL   string  `gorm:"type:varchar(512);not null" json:"ext_patient_url"`
	PublicPatientID *string `gorm:"type:varchar(256)" json:"public_patient_id"`
}

func (Patient) TableName() string { return "patients" }

type PatientMetadata struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	PatientID int64  `gorm:"index;not null" json:"patient_id"`
	Key       string `gorm:"type:varchar(256);not null" json:"key"`
	Value     string `gorm:"type:text;not null" json:"value"`
}

func (PatientMetadata) TableName() string { return "patients_metadata" }

type PatientWithSampleCount struct {
	Patient
	SampleCount int64 `json:"sample_count"`
}

// PatientWithSamples is the two level view: patient metadata plus samples,
// each with its own metadata.
type PatientWithSamples struct {
	Patient
	Metadata []PatientMetadata      `json:"metadata"`
	Samples  []SampleWithoutPatient `json:"samples"`
}

type PatientCreate struct {
	ProjectID       int64      `json:"project_id" binding:"required"`
	ExtPatientID    string     `json:"ext_patient_id" binding:"required"`
	ExtPatientURL   string     `json:"ext_patient_url"`
	PublicPatientID *string    `json:"public_patient_id"`
	Metadata        []KeyValue `json:"metadata" binding:"dive"`
}

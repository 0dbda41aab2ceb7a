package model

type Sample struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	PatientID    int64  `gorm:"index;not null" json:"patient_id"`
	ExtSampleID  string `gorm:"type:varchar(256);not null" json:"ext_sample_id"`
	ExtSampleURL string `gorm:"type:varchar(512);not null" json:"ext_sample_url"`
}

func (Sample) TableName() string { return "samples" }

type SampleMetadata struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	SampleID int64  `gorm:"index;not null" json:"sample_id"`
	Key      string `gorm:"type:varchar(256);not null" json:"key"`
	Value    string `gorm:"type:text;not null" json:"value"`
}

func (SampleMetadata) TableName() string { return "samples_metadata" }

type SampleWithoutPatient struct {
	Sample
	Metadata []SampleMetadata `json:"metadata"`
}

// SampleWithPatient embeds the owning patient as a single object.
type SampleWithPatient struct {
	Sample
	Metadata []SampleMetadata `json:"metadata"`
	Patient  Patient          `json:"patient"`
}

type SampleCreate struct {
	PatientID    int64      `json:"patient_id" binding:"required"`
	ExtSampleID  string     `json:"ext_sample_id" binding:"required"`
	ExtSampleURL string     `json:"ext_sample_url"`
	Metadata     []KeyValue `json:"metadata" binding:"dive"`
}

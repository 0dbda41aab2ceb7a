package model

type RawFile struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	DatasetID int64  `gorm:"index;not null" json:"dataset_id"`
	Path      string `gorm:"type:varchar(1024);not null" json:"path"`
}

func (RawFile) TableName() string { return "raw_files" }

type RawFileMetadata struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	RawFileID     int64  `gorm:"index;not null" json:"raw_file_id"`
	MetadataKey   string `gorm:"type:varchar(256);not null" json:"metadata_key"`
	MetadataValue string `gorm:"type:text;not null" json:"metadata_value"`
}

func (RawFileMetadata) TableName() string { return "raw_files_metadata" }

type FileMetadataCreate struct {
	MetadataKey   string `json:"metadata_key" binding:"required"`
	MetadataValue string `json:"metadata_value"`
}

// FileCreate is one entry of an add_raw_files batch. FileType is checked
// against FileTypes before anything is written.
type FileCreate struct {
	DatasetID int64                `json:"dataset_id" binding:"required"`
	Path      string               `json:"path" binding:"required"`
	FileType  string               `json:"file_type" binding:"required,oneof=raw processed summarised"`
	Metadata  []FileMetadataCreate `json:"metadata" binding:"dive"`
}

// FileResponse is a raw file resolved to the sample named by its sample_id
// metadata entry.
type FileResponse struct {
	ID             int64            `json:"id"`
	Path           string           `json:"path"`
	SampleID       *int64           `json:"sample_id"`
	ExtSampleID    *string          `json:"ext_sample_id"`
	SampleMetadata []SampleMetadata `json:"sample_metadata"`
}

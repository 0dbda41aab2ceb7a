package model

type Dataset struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	ProjectID int64  `gorm:"index;not null" json:"project_id"`
	Name      string `gorm:"type:varchar(256);not null" json:"name"`
}

func (Dataset) TableName() string { return "datasets" }

// DatasetMetadata is one key/value pair owned by a dataset. Uniqueness of
// (dataset_id, key) is kept by the upsert path only.
type DatasetMetadata struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	DatasetID int64  `gorm:"index;not null" json:"dataset_id"`
	Key       string `gorm:"type:varchar(256);not null" json:"key"`
	Value     string `gorm:"type:text;not null" json:"value"`
}

func (DatasetMetadata) TableName() string { return "datasets_metadata" }

type DatasetWithMetadata struct {
	Dataset
	Metadata []DatasetMetadata `json:"metadata"`
}

type DatasetCreate struct {
	ProjectID int64      `json:"project_id" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	Metadata  []KeyValue `json:"metadata" binding:"dive"`
}

// MetadataUpdate is the body of the size update call. FileSize is stored
// under KeyRawFileSize.
type MetadataUpdate struct {
	DatasetID      int64   `json:"dataset_id" binding:"required"`
	FileSize       *string `json:"file_size"`
	LastSizeUpdate *string `json:"last_size_update"`
}

// Pairs returns the non-empty fields as upsert entries.
func (u *MetadataUpdate) Pairs() []KeyValue {
	var pairs []KeyValue
	if u.FileSize != nil && *u.FileSize != "" {
		pairs = append(pairs, KeyValue{Key: KeyRawFileSize, Value: *u.FileSize})
	}
	if u.LastSizeUpdate != nil && *u.LastSizeUpdate != "" {
		pairs = append(pairs, KeyValue{Key: KeyLastSizeUpdate, Value: *u.LastSizeUpdate})
	}
	return pairs
}

type MetadataUpsert struct {
	Metadata []KeyValue `json:"metadata" binding:"required,dive"`
}

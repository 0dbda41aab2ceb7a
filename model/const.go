package model

// Dataset metadata keys maintained by the size update call.
const (
	KeyRawFileSize    = "raw_file_extension_size_of_all_files"
	KeyLastSizeUpdate = "last_size_update"
)

// KeySampleID is the raw file metadata key that links a file to a sample by
// storing the sample id as a string.
const KeySampleID = "sample_id"

// KeyValue is a metadata pair as supplied by clients.
type KeyValue struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// All returns every entity table model, parents first.
func All() []any {
	return []any{
		&Project{},
		&Dataset{}, &DatasetMetadata{},
		&Patient{}, &PatientMetadata{},
		&Sample{}, &SampleMetadata{},
		&RawFile{}, &RawFileMetadata{},
	}
}

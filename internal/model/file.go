package model

import "time"

// File is an uploaded document registered with the desk. Content, when there
// is any, lives in object storage under StorageKey.
type File struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ContentType string     `json:"contentType,omitempty"`
	Size        int64      `json:"size,omitempty"`
	StorageKey  string     `json:"storageKey,omitempty"`
	Attributes  Attributes `json:"attributes,omitempty"`
	UploadedAt  time.Time  `json:"uploadedAt"`
}

// HasContent reports whether the file has an object in storage.
func (f File) HasContent() bool { return f.StorageKey != "" }

func (f File) Clone() File {
	f.Attributes = f.Attributes.Clone()
	return f
}

// FileInput carries the caller fields for a new file record.
type FileInput struct {
	Name        string     `json:"name,omitempty"`
	ContentType string     `json:"contentType,omitempty"`
	Size        int64      `json:"size,omitempty"`
	StorageKey  string     `json:"storageKey,omitempty"`
	Attributes  Attributes `json:"attributes,omitempty"`
}

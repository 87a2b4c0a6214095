package jobcard

import (
	"fmt"
	"time"
)

// Attachment is a stored photo belonging to exactly one job card row.
// The record points at a file on disk; removing the record is expected
// to remove the file as well, best effort.
type Attachment struct {
	id           uint
	jobCardID    uint
	filePath     string
	originalName string
	contentType  string
	size         int64
	uploadedAt   time.Time
}

func NewAttachment(
	jobCardID uint,
	filePath string,
	originalName string,
	contentType string,
	size int64,
) (*Attachment, error) {
	if jobCardID == 0 {
		return nil, fmt.Errorf("job card ID is required")
	}
	if len(filePath) == 0 {
		return nil, fmt.Errorf("file path is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}

	return &Attachment{
		jobCardID:    jobCardID,
		filePath:     filePath,
		originalName: originalName,
		contentType:  contentType,
		size:         size,
		uploadedAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	jobCardID uint,
	filePath string,
	originalName string,
	contentType string,
	size int64,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if jobCardID == 0 {
		return nil, fmt.Errorf("job card ID is required")
	}
	if len(filePath) == 0 {
		return nil, fmt.Errorf("file path is required")
	}

	return &Attachment{
		id:           id,
		jobCardID:    jobCardID,
		filePath:     filePath,
		originalName: originalName,
		contentType:  contentType,
		size:         size,
		uploadedAt:   uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) JobCardID() uint {
	return a.jobCardID
}

func (a *Attachment) FilePath() string {
	return a.filePath
}

func (a *Attachment) OriginalName() string {
	return a.originalName
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

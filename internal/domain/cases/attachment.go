package cases

import (
	"fmt"
	"strings"
	"time"
)

// Attachment records metadata about a file stored outside the desk.
type Attachment struct {
	id           uint
	caseID       uint
	fileName     string
	filePath     string
	fileType     string
	description  string
	fileSize     *int64
	uploadedByID uint
	uploadedAt   time.Time
}

func NewAttachment(caseID uint, fileName, filePath, fileType, description string, fileSize *int64, uploadedByID uint, now time.Time) (*Attachment, error) {
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if fileSize != nil && *fileSize < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	if uploadedByID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &Attachment{
		caseID:       caseID,
		fileName:     fileName,
		filePath:     filePath,
		fileType:     strings.TrimSpace(fileType),
		description:  strings.TrimSpace(description),
		fileSize:     fileSize,
		uploadedByID: uploadedByID,
		uploadedAt:   now,
	}, nil
}

func ReconstructAttachment(id, caseID uint, fileName, filePath, fileType, description string, fileSize *int64, uploadedByID uint, uploadedAt time.Time) *Attachment {
	return &Attachment{
		id:           id,
		caseID:       caseID,
		fileName:     fileName,
		filePath:     filePath,
		fileType:     fileType,
		description:  description,
		fileSize:     fileSize,
		uploadedByID: uploadedByID,
		uploadedAt:   uploadedAt,
	}
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

func (a *Attachment) ID() uint              { return a.id }
func (a *Attachment) CaseID() uint          { return a.caseID }
func (a *Attachment) FileName() string      { return a.fileName }
func (a *Attachment) FilePath() string      { return a.filePath }
func (a *Attachment) FileType() string      { return a.fileType }
func (a *Attachment) Description() string   { return a.description }
func (a *Attachment) FileSize() *int64      { return a.fileSize }
func (a *Attachment) UploadedByID() uint    { return a.uploadedByID }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

package models

import "github.com/orris-inc/casedesk/internal/shared/constants"

// CaseModel stores timestamps as UTC unix milliseconds.
type CaseModel struct {
	ID                 uint     `gorm:"primaryKey"`
	CustomerName       string   `gorm:"size:200;not null;index"`
	SubscriberNumber   string   `gorm:"size:50;index"`
	Phone              string   `gorm:"size:20"`
	Address            string   `gorm:"size:500"`
	CategoryID         uint     `gorm:"not null;index"`
	Status             string   `gorm:"size:20;not null;index"`
	ProblemDescription string   `gorm:"type:text"`
	ActionsTaken       string   `gorm:"type:text"`
	LastMeterReading   *float64 `gorm:"type:decimal(18,3)"`
	LastReadingDate    *int64
	DebtAmount         *float64 `gorm:"type:decimal(18,2)"`
	ReceivedDate       *int64   `gorm:"index"`
	CreatedByID        uint     `gorm:"not null;index"`
	CreatedAt          int64    `gorm:"not null;index"`
	ModifiedByID       *uint    `gorm:"index"`
	ModifiedAt         *int64   `gorm:"index"`
	SolvedByID         *uint    `gorm:"index"`
	SolvedAt           *int64   `gorm:"index"`

	// No foreign key constraints or associations; cascades are done by the
	// case repository inside the caller's transaction.
}

func (CaseModel) TableName() string {
	return constants.TableCases
}

type CorrespondenceModel struct {
	ID                   uint   `gorm:"primaryKey"`
	CaseID               uint   `gorm:"not null;uniqueIndex:uk_correspondence_case_seq,priority:1"`
	CaseSequenceNumber   int    `gorm:"not null;uniqueIndex:uk_correspondence_case_seq,priority:2"`
	YearlySequenceNumber string `gorm:"size:20;not null;uniqueIndex:uk_correspondence_yearly_seq"`
	Sender               string `gorm:"size:200"`
	MessageContent       string `gorm:"type:text;not null"`
	SentAt               int64  `gorm:"not null;index"`
	CreatedByID          uint   `gorm:"not null;index"`
	CreatedAt            int64  `gorm:"not null"`
}

func (CorrespondenceModel) TableName() string {
	return constants.TableCorrespondences
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	CaseID       uint   `gorm:"not null;index"`
	FileName     string `gorm:"size:255;not null"`
	FilePath     string `gorm:"size:500;not null"`
	FileType     string `gorm:"size:50"`
	Description  string `gorm:"size:500"`
	FileSize     *int64
	UploadedByID uint  `gorm:"not null;index"`
	UploadedAt   int64 `gorm:"not null"`
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}

// SequenceCounterModel holds the last number handed out for a scope.
type SequenceCounterModel struct {
	ID       uint   `gorm:"primaryKey"`
	Scope    string `gorm:"size:20;not null;uniqueIndex:uk_sequence_scope,priority:1"`
	ScopeKey string `gorm:"size:50;not null;uniqueIndex:uk_sequence_scope,priority:2"`
	Value    int    `gorm:"not null;default:0"`
}

func (SequenceCounterModel) TableName() string {
	return constants.TableSequenceCounters
}

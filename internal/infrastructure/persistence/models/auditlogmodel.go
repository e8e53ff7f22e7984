package models

import (
	"gorm.io/datatypes"

	"github.com/orris-inc/casedesk/internal/shared/constants"
)

// AuditLogModel rows are inserted only. CaseID is not a foreign key so the
// delete entry outlives its case.
type AuditLogModel struct {
	ID                uint           `gorm:"primaryKey"`
	CaseID            uint           `gorm:"not null;index"`
	ActionType        string         `gorm:"size:20;not null;index"`
	ActionDescription string         `gorm:"size:500;not null"`
	PerformedByID     uint           `gorm:"not null;index"`
	PerformedByName   string         `gorm:"size:100;not null"`
	Timestamp         int64          `gorm:"not null;index"`
	OldValues         datatypes.JSON `gorm:"type:json"`
	NewValues         datatypes.JSON `gorm:"type:json"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}

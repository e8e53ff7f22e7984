package models

import "github.com/orris-inc/casedesk/internal/shared/constants"

type EmployeeModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:100;not null;index"`
	Position          string `gorm:"size:100"`
	PerformanceNumber string `gorm:"size:20;not null;uniqueIndex"`
	IsActive          bool   `gorm:"not null;index"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
}

func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}

type IssueCategoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	CategoryName string `gorm:"size:100;not null;uniqueIndex"`
	Description  string `gorm:"size:500"`
	ColorCode    string `gorm:"size:7;not null"`
}

func (IssueCategoryModel) TableName() string {
	return constants.TableIssueCategories
}

// All returns every model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&EmployeeModel{},
		&IssueCategoryModel{},
		&CaseModel{},
		&CorrespondenceModel{},
		&AttachmentModel{},
		&AuditLogModel{},
		&SequenceCounterModel{},
	}
}

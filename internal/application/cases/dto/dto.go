package dto

import (
	"encoding/json"
	"time"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/shared/mapper"
)

type CaseDTO struct {
	ID                 uint       `json:"id"`
	CustomerName       string     `json:"customer_name"`
	SubscriberNumber   string     `json:"subscriber_number"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	CategoryID         uint       `json:"category_id"`
	CategoryName       string     `json:"category_name"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"status_label"`
	ProblemDescription string     `json:"problem_description"`
	ActionsTaken       string     `json:"actions_taken"`
	LastMeterReading   *float64   `json:"last_meter_reading"`
	LastReadingDate    *time.Time `json:"last_reading_date"`
	DebtAmount         *float64   `json:"debt_amount"`
	ReceivedDate       *time.Time `json:"received_date"`
	CreatedByID        uint       `json:"created_by_id"`
	CreatedByName      string     `json:"created_by_name"`
	CreatedAt          time.Time  `json:"created_at"`
	ModifiedByID       *uint      `json:"modified_by_id"`
	ModifiedByName     string     `json:"modified_by_name"`
	ModifiedAt         *time.Time `json:"modified_at"`
	SolvedByID         *uint      `json:"solved_by_id"`
	SolvedByName       string     `json:"solved_by_name"`
	SolvedAt           *time.Time `json:"solved_at"`
}

// ToCaseDTO renders c with the display names found in names.
func ToCaseDTO(c *cases.Case, names cases.NameLookup) *CaseDTO {
	if c == nil {
		return nil
	}
	s := c.Snapshot(names)
	return &CaseDTO{
		ID:                 s.ID,
		CustomerName:       s.CustomerName,
		SubscriberNumber:   s.SubscriberNumber,
		Phone:              s.Phone,
		Address:            s.Address,
		CategoryID:         s.CategoryID,
		CategoryName:       s.CategoryName,
		Status:             s.Status,
		StatusLabel:        s.StatusLabel,
		ProblemDescription: s.ProblemDescription,
		ActionsTaken:       s.ActionsTaken,
		LastMeterReading:   s.LastMeterReading,
		LastReadingDate:    s.LastReadingDate,
		DebtAmount:         s.DebtAmount,
		ReceivedDate:       s.ReceivedDate,
		CreatedByID:        s.CreatedByID,
		CreatedByName:      s.CreatedByName,
		CreatedAt:          s.CreatedAt,
		ModifiedByID:       s.ModifiedByID,
		ModifiedByName:     s.ModifiedByName,
		ModifiedAt:         s.ModifiedAt,
		SolvedByID:         s.SolvedByID,
		SolvedByName:       s.SolvedByName,
		SolvedAt:           s.SolvedAt,
	}
}

func ToCaseDTOs(list []*cases.Case, names cases.NameLookup) []*CaseDTO {
	return mapper.MapSlice(list, func(c *cases.Case) *CaseDTO {
		return ToCaseDTO(c, names)
	})
}

type CorrespondenceDTO struct {
	ID                   uint      `json:"id"`
	CaseID               uint      `json:"case_id"`
	CaseSequenceNumber   int       `json:"case_sequence_number"`
	YearlySequenceNumber string    `json:"yearly_sequence_number"`
	Sender               string    `json:"sender"`
	MessageContent       string    `json:"message_content"`
	SentAt               time.Time `json:"sent_at"`
	CreatedByID          uint      `json:"created_by_id"`
	CreatedByName        string    `json:"created_by_name"`
	CreatedAt            time.Time `json:"created_at"`
}

func ToCorrespondenceDTO(c *cases.Correspondence, employees map[uint]string) *CorrespondenceDTO {
	return &CorrespondenceDTO{
		ID:                   c.ID(),
		CaseID:               c.CaseID(),
		CaseSequenceNumber:   c.CaseSequenceNumber(),
		YearlySequenceNumber: c.YearlySequenceNumber(),
		Sender:               c.Sender(),
		MessageContent:       c.MessageContent(),
		SentAt:               c.SentAt(),
		CreatedByID:          c.CreatedByID(),
		CreatedByName:        employees[c.CreatedByID()],
		CreatedAt:            c.CreatedAt(),
	}
}

func ToCorrespondenceDTOs(list []*cases.Correspondence, employees map[uint]string) []*CorrespondenceDTO {
	return mapper.MapSlice(list, func(c *cases.Correspondence) *CorrespondenceDTO {
		return ToCorrespondenceDTO(c, employees)
	})
}

type AttachmentDTO struct {
	ID             uint      `json:"id"`
	CaseID         uint      `json:"case_id"`
	FileName       string    `json:"file_name"`
	FilePath       string    `json:"file_path"`
	FileType       string    `json:"file_type"`
	Description    string    `json:"description"`
	FileSize       *int64    `json:"file_size"`
	UploadedByID   uint      `json:"uploaded_by_id"`
	UploadedByName string    `json:"uploaded_by_name"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

func ToAttachmentDTO(a *cases.Attachment, employees map[uint]string) *AttachmentDTO {
	return &AttachmentDTO{
		ID:             a.ID(),
		CaseID:         a.CaseID(),
		FileName:       a.FileName(),
		FilePath:       a.FilePath(),
		FileType:       a.FileType(),
		Description:    a.Description(),
		FileSize:       a.FileSize(),
		UploadedByID:   a.UploadedByID(),
		UploadedByName: employees[a.UploadedByID()],
		UploadedAt:     a.UploadedAt(),
	}
}

func ToAttachmentDTOs(list []*cases.Attachment, employees map[uint]string) []*AttachmentDTO {
	return mapper.MapSlice(list, func(a *cases.Attachment) *AttachmentDTO {
		return ToAttachmentDTO(a, employees)
	})
}

type AuditLogDTO struct {
	ID                uint            `json:"id"`
	CaseID            uint            `json:"case_id"`
	ActionType        string          `json:"action_type"`
	ActionLabel       string          `json:"action_label"`
	ActionDescription string          `json:"action_description"`
	PerformedByID     uint            `json:"performed_by_id"`
	PerformedByName   string          `json:"performed_by_name"`
	Timestamp         time.Time       `json:"timestamp"`
	OldValues         json.RawMessage `json:"old_values,omitempty"`
	NewValues         json.RawMessage `json:"new_values,omitempty"`
	ChangedFields     []string        `json:"changed_fields,omitempty"`
}

// ToAuditLogDTO renders an entry. For updates the changed snapshot fields
// are listed when both snapshots decode.
func ToAuditLogDTO(l *audit.Log) *AuditLogDTO {
	item := &AuditLogDTO{
		ID:                l.ID(),
		CaseID:            l.CaseID(),
		ActionType:        l.Action().String(),
		ActionLabel:       l.Action().Label(),
		ActionDescription: l.Description(),
		PerformedByID:     l.PerformedByID(),
		PerformedByName:   l.PerformedByName(),
		Timestamp:         l.Timestamp(),
	}
	if old := l.OldValues(); len(old) > 0 {
		item.OldValues = json.RawMessage(old)
	}
	if cur := l.NewValues(); len(cur) > 0 {
		item.NewValues = json.RawMessage(cur)
	}

	if l.Action() == audit.ActionUpdate {
		before, errBefore := cases.DecodeSnapshot(item.OldValues)
		after, errAfter := cases.DecodeSnapshot(item.NewValues)
		if errBefore == nil && errAfter == nil {
			item.ChangedFields, _ = cases.ChangedFields(before, after)
		}
	}
	return item
}

func ToAuditLogDTOs(list []*audit.Log) []*AuditLogDTO {
	return mapper.MapSlice(list, ToAuditLogDTO)
}

type StatisticsDTO struct {
	TotalCases            int        `json:"total_cases"`
	NewCases              int        `json:"new_cases"`
	InProgressCases       int        `json:"in_progress_cases"`
	SolvedCases           int        `json:"solved_cases"`
	ClosedCases           int        `json:"closed_cases"`
	ActiveCases           int        `json:"active_cases"`
	CasesThisMonth        int        `json:"cases_this_month"`
	CasesThisYear         int        `json:"cases_this_year"`
	AverageResolutionDays float64    `json:"average_resolution_days"`
	MostCommonCategory    string     `json:"most_common_category"`
	MostActiveEmployee    string     `json:"most_active_employee"`
	LastCaseDate          *time.Time `json:"last_case_date"`
	TotalAttachments      int64      `json:"total_attachments"`
	TotalCorrespondences  int64      `json:"total_correspondences"`
}

func ToStatisticsDTO(s *cases.Statistics) *StatisticsDTO {
	return &StatisticsDTO{
		TotalCases:            s.TotalCases,
		NewCases:              s.NewCases,
		InProgressCases:       s.InProgressCases,
		SolvedCases:           s.SolvedCases,
		ClosedCases:           s.ClosedCases,
		ActiveCases:           s.ActiveCases,
		CasesThisMonth:        s.CasesThisMonth,
		CasesThisYear:         s.CasesThisYear,
		AverageResolutionDays: s.AverageResolutionDays,
		MostCommonCategory:    s.MostCommonCategory,
		MostActiveEmployee:    s.MostActiveEmployee,
		LastCaseDate:          s.LastCaseDate,
		TotalAttachments:      s.TotalAttachments,
		TotalCorrespondences:  s.TotalCorrespondences,
	}
}

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ColorCode   string `json:"color_code"`
}

func ToCategoryDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		ColorCode:   c.ColorCode(),
	}
}

type StatusDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type EmployeeRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type LookupsDTO struct {
	Years      []int             `json:"years"`
	Categories []*CategoryDTO    `json:"categories"`
	Statuses   []StatusDTO       `json:"statuses"`
	Employees  []*EmployeeRefDTO `json:"employees"`
}

package mappers

import (
	"fmt"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
)

// CaseMapper converts between case aggregates and their persistence models.
type CaseMapper interface {
	ToModel(c *cases.Case) *models.CaseModel
	ToEntity(model *models.CaseModel) (*cases.Case, error)
	ToEntities(models []*models.CaseModel) ([]*cases.Case, error)

	CorrespondenceToModel(c *cases.Correspondence) *models.CorrespondenceModel
	CorrespondenceToEntity(model *models.CorrespondenceModel) *cases.Correspondence

	AttachmentToModel(a *cases.Attachment) *models.AttachmentModel
	AttachmentToEntity(model *models.AttachmentModel) *cases.Attachment
}

type CaseMapperImpl struct{}

func NewCaseMapper() CaseMapper {
	return &CaseMapperImpl{}
}

func (m *CaseMapperImpl) ToModel(c *cases.Case) *models.CaseModel {
	d := c.Details()
	meta := c.Metadata()
	return &models.CaseModel{
		ID:                 c.ID(),
		CustomerName:       d.CustomerName,
		SubscriberNumber:   d.SubscriberNumber,
		Phone:              d.Phone,
		Address:            d.Address,
		CategoryID:         d.CategoryID,
		Status:             d.Status.String(),
		ProblemDescription: d.ProblemDescription,
		ActionsTaken:       d.ActionsTaken,
		LastMeterReading:   d.LastMeterReading,
		LastReadingDate:    toMillisPtr(d.LastReadingDate),
		DebtAmount:         d.DebtAmount,
		ReceivedDate:       toMillisPtr(d.ReceivedDate),
		CreatedByID:        meta.CreatedByID,
		CreatedAt:          toMillis(meta.CreatedAt),
		ModifiedByID:       meta.ModifiedByID,
		ModifiedAt:         toMillisPtr(meta.ModifiedAt),
		SolvedByID:         meta.SolvedByID,
		SolvedAt:           toMillisPtr(meta.SolvedAt),
	}
}

func (m *CaseMapperImpl) ToEntity(model *models.CaseModel) (*cases.Case, error) {
	if model == nil {
		return nil, nil
	}
	status := vo.CaseStatus(model.Status)
	if !status.IsValid() {
		// rows written by the legacy desk carry the label instead of the code
		parsed, err := vo.ParseCaseStatus(model.Status)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", model.ID, err)
		}
		status = parsed
	}

	return cases.ReconstructCase(model.ID, cases.Details{
		CustomerName:       model.CustomerName,
		SubscriberNumber:   model.SubscriberNumber,
		Phone:              model.Phone,
		Address:            model.Address,
		CategoryID:         model.CategoryID,
		Status:             status,
		ProblemDescription: model.ProblemDescription,
		ActionsTaken:       model.ActionsTaken,
		LastMeterReading:   model.LastMeterReading,
		LastReadingDate:    fromMillisPtr(model.LastReadingDate),
		DebtAmount:         model.DebtAmount,
		ReceivedDate:       fromMillisPtr(model.ReceivedDate),
	}, cases.Metadata{
		CreatedByID:  model.CreatedByID,
		CreatedAt:    fromMillis(model.CreatedAt),
		ModifiedByID: model.ModifiedByID,
		ModifiedAt:   fromMillisPtr(model.ModifiedAt),
		SolvedByID:   model.SolvedByID,
		SolvedAt:     fromMillisPtr(model.SolvedAt),
	}), nil
}

func (m *CaseMapperImpl) ToEntities(caseModels []*models.CaseModel) ([]*cases.Case, error) {
	result := make([]*cases.Case, 0, len(caseModels))
	for _, model := range caseModels {
		c, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *CaseMapperImpl) CorrespondenceToModel(c *cases.Correspondence) *models.CorrespondenceModel {
	return &models.CorrespondenceModel{
		ID:                   c.ID(),
		CaseID:               c.CaseID(),
		CaseSequenceNumber:   c.CaseSequenceNumber(),
		YearlySequenceNumber: c.YearlySequenceNumber(),
		Sender:               c.Sender(),
		MessageContent:       c.MessageContent(),
		SentAt:               toMillis(c.SentAt()),
		CreatedByID:          c.CreatedByID(),
		CreatedAt:            toMillis(c.CreatedAt()),
	}
}

func (m *CaseMapperImpl) CorrespondenceToEntity(model *models.CorrespondenceModel) *cases.Correspondence {
	if model == nil {
		return nil
	}
	return cases.ReconstructCorrespondence(
		model.ID,
		model.CaseID,
		model.CaseSequenceNumber,
		model.YearlySequenceNumber,
		model.Sender,
		model.MessageContent,
		fromMillis(model.SentAt),
		model.CreatedByID,
		fromMillis(model.CreatedAt),
	)
}

func (m *CaseMapperImpl) AttachmentToModel(a *cases.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		CaseID:       a.CaseID(),
		FileName:     a.FileName(),
		FilePath:     a.FilePath(),
		FileType:     a.FileType(),
		Description:  a.Description(),
		FileSize:     a.FileSize(),
		UploadedByID: a.UploadedByID(),
		UploadedAt:   toMillis(a.UploadedAt()),
	}
}

func (m *CaseMapperImpl) AttachmentToEntity(model *models.AttachmentModel) *cases.Attachment {
	if model == nil {
		return nil
	}
	return cases.ReconstructAttachment(
		model.ID,
		model.CaseID,
		model.FileName,
		model.FilePath,
		model.FileType,
		model.Description,
		model.FileSize,
		model.UploadedByID,
		fromMillis(model.UploadedAt),
	)
}

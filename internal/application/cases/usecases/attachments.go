package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// AddAttachmentCommand registers file metadata. The bytes live wherever
// FilePath points.
type AddAttachmentCommand struct {
	CaseID       uint
	FileName     string
	FilePath     string
	FileType     string
	Description  string
	FileSize     *int64
	UploadedByID uint
}

type AddAttachmentUseCase struct {
	caseRepo       cases.CaseRepository
	attachmentRepo cases.AttachmentRepository
	employees      EmployeeDirectory
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	caseRepo cases.CaseRepository,
	attachmentRepo cases.AttachmentRepository,
	employees EmployeeDirectory,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		caseRepo:       caseRepo,
		attachmentRepo: attachmentRepo,
		employees:      employees,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing add attachment use case", "case_id", cmd.CaseID, "file_name", cmd.FileName)

	uploader, err := requireEmployee(ctx, uc.employees, cmd.UploadedByID, "uploader")
	if err != nil {
		return nil, err
	}
	if _, err := requireCase(ctx, uc.caseRepo, cmd.CaseID); err != nil {
		return nil, err
	}

	a, err := cases.NewAttachment(cmd.CaseID, cmd.FileName, cmd.FilePath, cmd.FileType, cmd.Description, cmd.FileSize, uploader.ID(), biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.attachmentRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create attachment", "case_id", cmd.CaseID, "error", err)
		return nil, errors.WrapPersistence(err, "failed to create attachment")
	}

	uc.logger.Infow("attachment added successfully", "attachment_id", a.ID(), "case_id", cmd.CaseID)
	return dto.ToAttachmentDTO(a, map[uint]string{uploader.ID(): uploader.Name()}), nil
}

type DeleteAttachmentCommand struct {
	AttachmentID uint
}

// DeleteAttachmentUseCase removes attachment metadata. A missing attachment
// is not an error.
type DeleteAttachmentUseCase struct {
	attachmentRepo cases.AttachmentRepository
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(attachmentRepo cases.AttachmentRepository, logger logger.Interface) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{attachmentRepo: attachmentRepo, logger: logger}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	err := uc.attachmentRepo.Delete(ctx, cmd.AttachmentID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to delete attachment", "attachment_id", cmd.AttachmentID, "error", err)
		return errors.WrapPersistence(err, "failed to delete attachment")
	}
	return nil
}

type ListAttachmentsQuery struct {
	CaseID uint
}

type ListAttachmentsUseCase struct {
	caseRepo       cases.CaseRepository
	attachmentRepo cases.AttachmentRepository
	employees      EmployeeDirectory
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	caseRepo cases.CaseRepository,
	attachmentRepo cases.AttachmentRepository,
	employees EmployeeDirectory,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		caseRepo:       caseRepo,
		attachmentRepo: attachmentRepo,
		employees:      employees,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]*dto.AttachmentDTO, error) {
	if _, err := requireCase(ctx, uc.caseRepo, query.CaseID); err != nil {
		return nil, err
	}
	list, err := uc.attachmentRepo.ListByCase(ctx, query.CaseID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "case_id", query.CaseID, "error", err)
		return nil, errors.WrapPersistence(err, "failed to list attachments")
	}
	names, err := employeeNames(ctx, uc.employees)
	if err != nil {
		return nil, err
	}
	return dto.ToAttachmentDTOs(list, names), nil
}

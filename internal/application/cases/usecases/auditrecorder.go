package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

const (
	createDescriptionFormat = "تم إنشاء مشكلة جديدة للعميل: %s"
	updateDescriptionFormat = "تم تعديل المشكلة الخاصة بالعميل: %s"
	deleteDescriptionFormat = "تم حذف المشكلة الخاصة بالعميل: %s"
)

// AuditRecorder writes one immutable audit entry per case mutation. The
// performer name is copied from the employee at write time.
type AuditRecorder struct {
	auditRepo audit.Repository
	names     *nameResolver
	logger    logger.Interface
}

func NewAuditRecorder(
	auditRepo audit.Repository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	logger logger.Interface,
) *AuditRecorder {
	return &AuditRecorder{
		auditRepo: auditRepo,
		names:     newNameResolver(employees, categories),
		logger:    logger,
	}
}

// Snapshot captures the persisted state of c with its display names.
func (r *AuditRecorder) Snapshot(ctx context.Context, c *cases.Case) (cases.Snapshot, error) {
	names, err := r.names.forCase(ctx, c)
	if err != nil {
		return cases.Snapshot{}, err
	}
	return c.Snapshot(names), nil
}

func (r *AuditRecorder) RecordCreate(ctx context.Context, c *cases.Case, performer *employee.Employee, at time.Time) error {
	after, err := r.Snapshot(ctx, c)
	if err != nil {
		return err
	}
	return r.append(ctx, c.ID(), audit.ActionCreate, fmt.Sprintf(createDescriptionFormat, after.CustomerName), performer, at, nil, &after)
}

func (r *AuditRecorder) RecordUpdate(ctx context.Context, before cases.Snapshot, c *cases.Case, performer *employee.Employee, at time.Time) error {
	after, err := r.Snapshot(ctx, c)
	if err != nil {
		return err
	}
	return r.append(ctx, c.ID(), audit.ActionUpdate, fmt.Sprintf(updateDescriptionFormat, after.CustomerName), performer, at, &before, &after)
}

func (r *AuditRecorder) RecordDelete(ctx context.Context, before cases.Snapshot, performer *employee.Employee, at time.Time) error {
	return r.append(ctx, before.ID, audit.ActionDelete, fmt.Sprintf(deleteDescriptionFormat, before.CustomerName), performer, at, &before, nil)
}

func (r *AuditRecorder) append(
	ctx context.Context,
	caseID uint,
	action audit.ActionType,
	description string,
	performer *employee.Employee,
	at time.Time,
	before, after *cases.Snapshot,
) error {
	var oldValues, newValues []byte
	var err error
	if before != nil {
		if oldValues, err = cases.EncodeSnapshot(*before); err != nil {
			return errors.NewInternalError("failed to encode audit snapshot", err.Error())
		}
	}
	if after != nil {
		if newValues, err = cases.EncodeSnapshot(*after); err != nil {
			return errors.NewInternalError("failed to encode audit snapshot", err.Error())
		}
	}

	entry, err := audit.NewLog(caseID, action, description, performer.ID(), performer.Name(), at, oldValues, newValues)
	if err != nil {
		return errors.NewInternalError("invalid audit entry", err.Error())
	}

	if err := r.auditRepo.Append(ctx, entry); err != nil {
		r.logger.Errorw("failed to write audit entry", "case_id", caseID, "action", action, "error", err)
		return errors.WrapPersistence(err, "failed to write audit entry")
	}
	return nil
}

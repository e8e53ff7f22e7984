package usecases

import (
	"context"
	"strconv"
	"time"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/shared/errors"
)

// CaseInput carries the operator editable fields of a case. Amounts are kept
// as entered so that malformed numbers surface as validation errors.
type CaseInput struct {
	CustomerName       string
	SubscriberNumber   string
	Phone              string
	Address            string
	CategoryID         uint
	Status             string
	ProblemDescription string
	ActionsTaken       string
	LastMeterReading   string
	LastReadingDate    *time.Time
	DebtAmount         string
	ReceivedDate       *time.Time
}

func (in CaseInput) toDetails() (cases.Details, error) {
	if in.Status == "" {
		return cases.Details{}, errors.NewValidationError("status is required")
	}
	status, err := vo.ParseCaseStatus(in.Status)
	if err != nil {
		return cases.Details{}, errors.NewValidationError(err.Error())
	}
	reading, err := cases.ParseAmount("last meter reading", in.LastMeterReading)
	if err != nil {
		return cases.Details{}, errors.NewValidationError(err.Error())
	}
	debt, err := cases.ParseAmount("debt amount", in.DebtAmount)
	if err != nil {
		return cases.Details{}, errors.NewValidationError(err.Error())
	}

	return cases.Details{
		CustomerName:       in.CustomerName,
		SubscriberNumber:   in.SubscriberNumber,
		Phone:              in.Phone,
		Address:            in.Address,
		CategoryID:         in.CategoryID,
		Status:             status,
		ProblemDescription: in.ProblemDescription,
		ActionsTaken:       in.ActionsTaken,
		LastMeterReading:   reading,
		LastReadingDate:    utcPtr(in.LastReadingDate),
		DebtAmount:         debt,
		ReceivedDate:       utcPtr(in.ReceivedDate),
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Truncate(time.Millisecond)
	return &v
}

// requireCategory fails with NotFound when id does not resolve.
func requireCategory(ctx context.Context, categories CategoryDirectory, id uint) error {
	if id == 0 {
		return errors.NewValidationError("category is required")
	}
	cat, err := categories.GetByID(ctx, id)
	if err != nil {
		return errors.WrapPersistence(err, "failed to resolve category")
	}
	if cat == nil {
		return errors.NewNotFoundError("category not found", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}

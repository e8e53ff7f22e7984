package cases

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
)

// Details holds the operator editable fields of a case.
type Details struct {
	CustomerName       string
	SubscriberNumber   string
	Phone              string
	Address            string
	CategoryID         uint
	Status             vo.CaseStatus
	ProblemDescription string
	ActionsTaken       string
	LastMeterReading   *float64
	LastReadingDate    *time.Time
	DebtAmount         *float64
	ReceivedDate       *time.Time
}

// Metadata holds the lifecycle stamps of a case.
type Metadata struct {
	CreatedByID  uint
	CreatedAt    time.Time
	ModifiedByID *uint
	ModifiedAt   *time.Time
	SolvedByID   *uint
	SolvedAt     *time.Time
}

type Case struct {
	id      uint
	details Details
	meta    Metadata
}

func NewCase(details Details, createdByID uint, now time.Time) (*Case, error) {
	if createdByID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	details, err := normalizeDetails(details)
	if err != nil {
		return nil, err
	}

	c := &Case{
		details: details,
		meta: Metadata{
			CreatedByID: createdByID,
			CreatedAt:   now,
		},
	}
	if details.Status == vo.StatusSolved {
		c.markSolved(createdByID, now)
	}

	return c, nil
}

// ReconstructCase rebuilds a case from persisted state without validation.
func ReconstructCase(id uint, details Details, meta Metadata) *Case {
	return &Case{
		id:      id,
		details: details,
		meta:    meta,
	}
}

func normalizeDetails(d Details) (Details, error) {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	if d.CustomerName == "" {
		return d, fmt.Errorf("customer name is required")
	}
	if len([]rune(d.CustomerName)) > 200 {
		return d, fmt.Errorf("customer name exceeds maximum length of 200 characters")
	}
	if d.CategoryID == 0 {
		return d, fmt.Errorf("category is required")
	}
	if !d.Status.IsValid() {
		return d, fmt.Errorf("invalid case status: %q", d.Status)
	}
	if d.LastMeterReading != nil && *d.LastMeterReading < 0 {
		return d, fmt.Errorf("last meter reading cannot be negative")
	}
	if d.DebtAmount != nil && *d.DebtAmount < 0 {
		return d, fmt.Errorf("debt amount cannot be negative")
	}
	d.SubscriberNumber = strings.TrimSpace(d.SubscriberNumber)
	d.Phone = strings.TrimSpace(d.Phone)
	return d, nil
}

// Update replaces the editable fields and stamps the modification metadata.
// solverID, when set, records who solved the case; otherwise the modifier is
// recorded as solver when the case moves to Solved.
func (c *Case) Update(details Details, modifierID uint, solverID *uint, now time.Time) error {
	if modifierID == 0 {
		return fmt.Errorf("modifier ID is required")
	}
	details, err := normalizeDetails(details)
	if err != nil {
		return err
	}

	previous := c.details.Status
	c.details = details

	switch details.Status {
	case vo.StatusSolved:
		if previous != vo.StatusSolved || c.meta.SolvedAt == nil {
			solver := modifierID
			if solverID != nil {
				solver = *solverID
			}
			c.markSolved(solver, now)
		} else if solverID != nil {
			c.meta.SolvedByID = copyUint(solverID)
		}
	case vo.StatusNew, vo.StatusInProgress:
		c.meta.SolvedByID = nil
		c.meta.SolvedAt = nil
	}

	c.meta.ModifiedByID = &modifierID
	modifiedAt := now
	c.meta.ModifiedAt = &modifiedAt
	return nil
}

func (c *Case) markSolved(solverID uint, at time.Time) {
	solvedAt := at
	c.meta.SolvedByID = &solverID
	c.meta.SolvedAt = &solvedAt
}

func (c *Case) ID() uint {
	return c.id
}

func (c *Case) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("case ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	c.id = id
	return nil
}

// Details returns a copy of the editable fields.
func (c *Case) Details() Details {
	d := c.details
	d.LastMeterReading = copyFloat(d.LastMeterReading)
	d.LastReadingDate = copyTime(d.LastReadingDate)
	d.DebtAmount = copyFloat(d.DebtAmount)
	d.ReceivedDate = copyTime(d.ReceivedDate)
	return d
}

// Metadata returns a copy of the lifecycle stamps.
func (c *Case) Metadata() Metadata {
	m := c.meta
	m.ModifiedByID = copyUint(m.ModifiedByID)
	m.ModifiedAt = copyTime(m.ModifiedAt)
	m.SolvedByID = copyUint(m.SolvedByID)
	m.SolvedAt = copyTime(m.SolvedAt)
	return m
}

func (c *Case) CustomerName() string {
	return c.details.CustomerName
}

func (c *Case) CategoryID() uint {
	return c.details.CategoryID
}

func (c *Case) Status() vo.CaseStatus {
	return c.details.Status
}

func (c *Case) CreatedByID() uint {
	return c.meta.CreatedByID
}

func (c *Case) CreatedAt() time.Time {
	return c.meta.CreatedAt
}

func (c *Case) ModifiedAt() *time.Time {
	return copyTime(c.meta.ModifiedAt)
}

func (c *Case) SolvedAt() *time.Time {
	return copyTime(c.meta.SolvedAt)
}

// DateOf returns the value of the named date field, nil when unset.
func (c *Case) DateOf(field DateField) *time.Time {
	switch field {
	case DateFieldReceived:
		return copyTime(c.details.ReceivedDate)
	case DateFieldModified:
		return copyTime(c.meta.ModifiedAt)
	case DateFieldSolved:
		return copyTime(c.meta.SolvedAt)
	default:
		created := c.meta.CreatedAt
		return &created
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func copyUint(u *uint) *uint {
	if u == nil {
		return nil
	}
	v := *u
	return &v
}

package cases

import (
	"context"
)

// CaseRepository persists cases. GetByID returns (nil, nil) when the case
// does not exist.
type CaseRepository interface {
	Create(ctx context.Context, c *Case) error
	Update(ctx context.Context, c *Case) error
	// Delete removes the case together with its correspondences,
	// attachments, prior audit entries and sequence counter.
	Delete(ctx context.Context, caseID uint) error
	GetByID(ctx context.Context, caseID uint) (*Case, error)
	List(ctx context.Context) ([]*Case, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]*Case, error)
	KeywordSearch(ctx context.Context, keyword string) ([]*Case, error)
	AvailableYears(ctx context.Context) ([]int, error)
}

type CorrespondenceRepository interface {
	// Create inserts the correspondence. A clash on either sequence number
	// is reported as a sequence conflict error.
	Create(ctx context.Context, c *Correspondence) error
	GetByID(ctx context.Context, id uint) (*Correspondence, error)
	Delete(ctx context.Context, id uint) error
	ListByCase(ctx context.Context, caseID uint) ([]*Correspondence, error)
	SearchByYearlyNumber(ctx context.Context, fragment string) ([]*Correspondence, error)
	Count(ctx context.Context) (int64, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	Delete(ctx context.Context, id uint) error
	ListByCase(ctx context.Context, caseID uint) ([]*Attachment, error)
	Count(ctx context.Context) (int64, error)
}

// SequenceCounter hands out correspondence sequence numbers. Next* calls
// must run inside the unit of work that inserts the correspondence so the
// increment rolls back with it.
type SequenceCounter interface {
	NextCaseSequence(ctx context.Context, caseID uint) (int, error)
	NextYearlySequence(ctx context.Context, year int) (int, error)
	PeekYearlySequence(ctx context.Context, year int) (int, error)
	// Resync raises the case and year counters to at least the highest
	// number already stored, in a transaction of its own. It runs between
	// attempts after a sequence conflict, so the next draw skips past the
	// clashing rows.
	Resync(ctx context.Context, caseID uint, year int) error
}

package employee

import "context"

// Repository resolves employees. GetByID also returns deactivated
// employees; lookups by performance number and search see active ones only.
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetActiveByPerformanceNumber(ctx context.Context, performanceNumber string) (*Employee, error)
	ExistsByPerformanceNumber(ctx context.Context, performanceNumber string) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]*Employee, error)
	Search(ctx context.Context, term string) ([]*Employee, error)
}

package checklist

import "context"

type Repository interface {
	// ListByCheckType returns checklists of the given check type without
	// their question rows.
	ListByCheckType(ctx context.Context, checkType string) ([]Checklist, error)

	// GetByID returns one checklist including its question rows.
	GetByID(ctx context.Context, id int64) (Checklist, error)
}

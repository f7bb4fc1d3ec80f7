package location

import "context"

// Catalog is the shared, read-only cache of location options. It is keyed by
// (level, parent id) and loads each children list at most once; it carries no
// notion of a current selection.
type Catalog interface {
	// Children returns the children of parentID at the given level, fetching
	// from the repository on first use and serving the cached list afterwards.
	Children(ctx context.Context, level Level, parentID int64) ([]Location, error)

	// Loaded reports whether the children of parentID at the given level are
	// already cached.
	Loaded(level Level, parentID int64) bool

	// Loading reports whether any fetch for the given level is in flight.
	Loading(level Level) bool
}

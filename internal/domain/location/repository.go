package location

import "context"

type Repository interface {
	// Children returns the locations at the given level whose parent matches
	// parentID, ordered by name. For LevelBuilding the parent is a site.
	Children(ctx context.Context, level Level, parentID int64) ([]Location, error)
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/location"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.Repository {
	return &locationRepositoryImpl{db: db}
}

// Each hierarchy level lives in its own table; the parent column names the
// tier above it.
var levelQueries = map[location.Level]string{
	location.LevelBuilding: `SELECT id, site_id, name FROM buildings WHERE site_id = $1 ORDER BY name ASC`,
	location.LevelWing:     `SELECT id, building_id, name FROM wings WHERE building_id = $1 ORDER BY name ASC`,
	location.LevelArea:     `SELECT id, wing_id, name FROM areas WHERE wing_id = $1 ORDER BY name ASC`,
	location.LevelFloor:    `SELECT id, area_id, name FROM floors WHERE area_id = $1 ORDER BY name ASC`,
	location.LevelRoom:     `SELECT id, floor_id, name FROM rooms WHERE floor_id = $1 ORDER BY name ASC`,
}

// Children implements location.Repository.
func (r *locationRepositoryImpl) Children(ctx context.Context, level location.Level, parentID int64) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query, ok := levelQueries[level]
	if !ok {
		return nil, location.ErrUnknownLevel
	}

	rows, err := q.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s list: %w", level, err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		var l location.Location
		err := rows.Scan(
			&l.ID,
			&l.ParentID,
			&l.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", level, err)
		}
		locations = append(locations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return locations, nil
}

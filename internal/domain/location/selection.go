package location

// Selection is the nullable building/wing/area/floor/room tuple owned by a
// single consumer (one checkpoint). The catalog never holds a "current
// selection"; callers thread a Selection value through explicitly so that
// rows rendering the same option lists cannot desync each other.
//
// Invariant: assigning a level always nulls every level below it, so a
// partially inconsistent tuple (wing set, building empty) is never
// observable.
type Selection struct {
	BuildingID *int64 `json:"building_id"`
	WingID     *int64 `json:"wing_id"`
	AreaID     *int64 `json:"area_id"`
	FloorID    *int64 `json:"floor_id"`
	RoomID     *int64 `json:"room_id"`
}

func (s Selection) WithBuilding(id int64) Selection {
	return Selection{BuildingID: &id}
}

func (s Selection) WithWing(id int64) Selection {
	return Selection{BuildingID: s.BuildingID, WingID: &id}
}

func (s Selection) WithArea(id int64) Selection {
	return Selection{BuildingID: s.BuildingID, WingID: s.WingID, AreaID: &id}
}

func (s Selection) WithFloor(id int64) Selection {
	return Selection{BuildingID: s.BuildingID, WingID: s.WingID, AreaID: s.AreaID, FloorID: &id}
}

func (s Selection) WithRoom(id int64) Selection {
	return Selection{BuildingID: s.BuildingID, WingID: s.WingID, AreaID: s.AreaID, FloorID: s.FloorID, RoomID: &id}
}

// With applies a selection at the given level, resetting all deeper levels.
func (s Selection) With(level Level, id int64) (Selection, error) {
	switch level {
	case LevelBuilding:
		return s.WithBuilding(id), nil
	case LevelWing:
		return s.WithWing(id), nil
	case LevelArea:
		return s.WithArea(id), nil
	case LevelFloor:
		return s.WithFloor(id), nil
	case LevelRoom:
		return s.WithRoom(id), nil
	default:
		return Selection{}, ErrUnknownLevel
	}
}

// Complete reports whether the selection is submit-eligible: building, wing,
// area and floor must all be resolved. Room stays optional.
func (s Selection) Complete() bool {
	return s.BuildingID != nil && s.WingID != nil && s.AreaID != nil && s.FloorID != nil
}

package location

// Level identifies one tier of the site location hierarchy. Children of a
// level always belong to the next tier down: site, building, wing, area,
// floor, room.
type Level string

const (
	LevelBuilding Level = "building"
	LevelWing     Level = "wing"
	LevelArea     Level = "area"
	LevelFloor    Level = "floor"
	LevelRoom     Level = "room"
)

var LevelValues = []string{
	string(LevelBuilding),
	string(LevelWing),
	string(LevelArea),
	string(LevelFloor),
	string(LevelRoom),
}

type Location struct {
	ID       int64
	ParentID int64
	Name     string
}

package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSelection() Selection {
	s := Selection{}
	s = s.WithBuilding(1)
	s = s.WithWing(11)
	s = s.WithArea(111)
	s = s.WithFloor(1111)
	s = s.WithRoom(11111)
	return s
}

func TestSelectionAssignmentResetsDeeperLevels(t *testing.T) {
	tests := []struct {
		name  string
		apply func(Selection) Selection
		check func(*testing.T, Selection)
	}{
		{
			name:  "building resets everything below",
			apply: func(s Selection) Selection { return s.WithBuilding(2) },
			check: func(t *testing.T, s Selection) {
				assert.Equal(t, int64(2), *s.BuildingID)
				assert.Nil(t, s.WingID)
				assert.Nil(t, s.AreaID)
				assert.Nil(t, s.FloorID)
				assert.Nil(t, s.RoomID)
			},
		},
		{
			name:  "wing keeps building",
			apply: func(s Selection) Selection { return s.WithWing(12) },
			check: func(t *testing.T, s Selection) {
				assert.Equal(t, int64(1), *s.BuildingID)
				assert.Equal(t, int64(12), *s.WingID)
				assert.Nil(t, s.AreaID)
				assert.Nil(t, s.FloorID)
				assert.Nil(t, s.RoomID)
			},
		},
		{
			name:  "area keeps building and wing",
			apply: func(s Selection) Selection { return s.WithArea(112) },
			check: func(t *testing.T, s Selection) {
				assert.Equal(t, int64(11), *s.WingID)
				assert.Equal(t, int64(112), *s.AreaID)
				assert.Nil(t, s.FloorID)
				assert.Nil(t, s.RoomID)
			},
		},
		{
			name:  "floor resets room only",
			apply: func(s Selection) Selection { return s.WithFloor(1112) },
			check: func(t *testing.T, s Selection) {
				assert.Equal(t, int64(1112), *s.FloorID)
				assert.Nil(t, s.RoomID)
			},
		},
		{
			name:  "room resets nothing",
			apply: func(s Selection) Selection { return s.WithRoom(11112) },
			check: func(t *testing.T, s Selection) {
				assert.Equal(t, int64(1111), *s.FloorID)
				assert.Equal(t, int64(11112), *s.RoomID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.apply(fullSelection()))
		})
	}
}

func TestSelectionWithDispatchesByLevel(t *testing.T) {
	s, err := Selection{}.With(LevelBuilding, 7)
	require.NoError(t, err)
	require.NotNil(t, s.BuildingID)
	assert.Equal(t, int64(7), *s.BuildingID)

	s, err = s.With(LevelWing, 70)
	require.NoError(t, err)
	assert.Equal(t, int64(70), *s.WingID)

	_, err = s.With(Level("basement"), 1)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestSelectionValueSemantics(t *testing.T) {
	original := fullSelection()
	modified := original.WithBuilding(99)

	// The original tuple is untouched by deriving a new one.
	assert.Equal(t, int64(1), *original.BuildingID)
	assert.Equal(t, int64(11111), *original.RoomID)
	assert.Equal(t, int64(99), *modified.BuildingID)
}

func TestSelectionComplete(t *testing.T) {
	assert.False(t, Selection{}.Complete())

	partial := Selection{}.WithBuilding(1).WithWing(11).WithArea(111)
	assert.False(t, partial.Complete())

	withFloor := partial.WithFloor(1111)
	assert.True(t, withFloor.Complete())

	// Room stays optional.
	assert.True(t, withFloor.WithRoom(11111).Complete())

	// Reselecting higher up revokes completeness.
	assert.False(t, withFloor.WithWing(12).Complete())
}

package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymaze/pkg/engine/world"
)

func TestNearestKey_PicksClosest(t *testing.T) {
	f := mustField(t,
		"#########",
		"#b.A.@.a#",
		"#########",
	)
	route, ok := f.NearestKey(world.Pt(5, 1))
	require.True(t, ok)
	assert.Equal(t, Route{Length: 2, From: world.Pt(5, 1), To: world.Pt(7, 1)}, route)
}

func TestNearestKey_BlockedByDoor(t *testing.T) {
	f := mustField(t,
		"#######",
		"#b.A.@#",
		"#.#####",
		"#a#####",
		"#######",
	)
	// Both keys sit behind door A, and A's key is one of them.
	_, ok := f.NearestKey(world.Pt(5, 1))
	assert.False(t, ok)
}

func TestNearestKey_AfterDoorOpens(t *testing.T) {
	f := mustField(t,
		"#########",
		"#b.A.@.a#",
		"#########",
	)
	require.NoError(t, f.CollectKey(world.Pt(5, 1), world.Pt(7, 1)))

	route, ok := f.NearestKey(world.Pt(7, 1))
	require.True(t, ok)
	assert.Equal(t, 6, route.Length)
	assert.Equal(t, world.Pt(1, 1), route.To)
}

func TestNearestKey_RobotsBlockEachOther(t *testing.T) {
	f := mustField(t,
		"#######",
		"#@@..a#",
		"#######",
	)
	_, ok := f.NearestKey(world.Pt(1, 1))
	assert.False(t, ok, "the second robot plugs the corridor")

	route, ok := f.NearestKey(world.Pt(2, 1))
	require.True(t, ok)
	assert.Equal(t, 3, route.Length)
}

func TestNearestKey_NoKeysLeft(t *testing.T) {
	f := mustField(t,
		"#####",
		"#@..#",
		"#####",
	)
	_, ok := f.NearestKey(world.Pt(1, 1))
	assert.False(t, ok)
}

func TestNearestKey_ShortestAroundObstacle(t *testing.T) {
	f := mustField(t,
		"#######",
		"#@.#.a#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	route, ok := f.NearestKey(world.Pt(1, 1))
	require.True(t, ok)
	// Down to row 3, across under the wall, back up: 2 + 4 + 2.
	assert.Equal(t, 8, route.Length)
	assert.Equal(t, world.Pt(5, 1), route.To)
}

func TestReachableKeys_NearestFirst(t *testing.T) {
	f := mustField(t,
		"#############",
		"#b..@.a....c#",
		"#############",
	)
	routes := f.ReachableKeys(world.Pt(4, 1))
	require.Len(t, routes, 3)
	assert.Equal(t, Route{Length: 2, From: world.Pt(4, 1), To: world.Pt(6, 1)}, routes[0])
	assert.Equal(t, Route{Length: 3, From: world.Pt(4, 1), To: world.Pt(1, 1)}, routes[1])
	assert.Equal(t, Route{Length: 7, From: world.Pt(4, 1), To: world.Pt(11, 1)}, routes[2])

	nearest, ok := f.NearestKey(world.Pt(4, 1))
	require.True(t, ok)
	assert.Equal(t, routes[0], nearest)
}

func TestReachableKeys_RespectsLocks(t *testing.T) {
	f := mustField(t,
		"#########",
		"#b.A.@.a#",
		"#########",
	)
	routes := f.ReachableKeys(world.Pt(5, 1))
	require.Len(t, routes, 1)
	assert.Equal(t, world.Pt(7, 1), routes[0].To)
}

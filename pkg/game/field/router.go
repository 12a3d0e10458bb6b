package field

import (
	"github.com/zyedidia/generic/queue"

	"keymaze/pkg/engine/world"
)

// Route is a shortest walk from a robot to a key.
type Route struct {
	Length int
	From   world.Point
	To     world.Point
}

// NearestKey runs a breadth-first search from the robot at from and returns
// the route to the closest remaining key. Unit step costs make the first key
// dequeued a closest one. The boolean is false when no key is reachable
// under the current lock state.
func (f *Field) NearestKey(from world.Point) (Route, bool) {
	distance := map[world.Point]int{from: 0}
	q := queue.New[world.Point]()
	q.Enqueue(from)

	for !q.Empty() {
		current := q.Dequeue()
		if f.keys.Has(current) {
			return Route{Length: distance[current], From: from, To: current}, true
		}
		for n := range f.Neighbors(current) {
			if _, seen := distance[n]; seen {
				continue
			}
			distance[n] = distance[current] + 1
			q.Enqueue(n)
		}
	}

	return Route{}, false
}

// ReachableKeys runs the same search as NearestKey without stopping at the
// first key, returning a route to every remaining key reachable from from,
// nearest first. Walks may pass over other keys without collecting them.
func (f *Field) ReachableKeys(from world.Point) []Route {
	var routes []Route
	distance := map[world.Point]int{from: 0}
	q := queue.New[world.Point]()
	q.Enqueue(from)

	for !q.Empty() {
		current := q.Dequeue()
		if f.keys.Has(current) {
			routes = append(routes, Route{Length: distance[current], From: from, To: current})
			if len(routes) == f.keys.Size() {
				break
			}
		}
		for n := range f.Neighbors(current) {
			if _, seen := distance[n]; seen {
				continue
			}
			distance[n] = distance[current] + 1
			q.Enqueue(n)
		}
	}

	return routes
}

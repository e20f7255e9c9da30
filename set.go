package kine

import "github.com/kinetose/kine/bvh"

// bounded is the constraint every Set element satisfies: it can report
// its own current bounding volume so the Set's BVH can be kept in sync.
type bounded interface {
	boundingVolume() BoundingVolume
}

// Set is a BVH-backed collection of bodies of one kind (statics,
// kinematics, or triggers) — spec §4.5's "Body set". It keeps an
// ObjectID-addressed map alongside a bvh.Tree so overlap queries run
// against the tree while direct lookups (for deferred removal, trigger
// bookkeeping) run against the map.
type Set[T bounded] struct {
	items   map[ObjectID]T
	handles map[ObjectID]int
	order   []ObjectID
	pos     map[ObjectID]int
	tree    *bvh.Tree[ObjectID]
}

// NewSet returns an empty Set. margin fattens stored boxes the same way
// the underlying bvh.Tree does, absorbing small per-tick moves without a
// tree update.
func NewSet[T bounded](margin Real) *Set[T] {
	return &Set[T]{
		items:   make(map[ObjectID]T),
		handles: make(map[ObjectID]int),
		pos:     make(map[ObjectID]int),
		tree:    bvh.New[ObjectID](float64(margin)),
	}
}

// Len reports how many bodies the set currently holds.
func (s *Set[T]) Len() int { return len(s.items) }

// Add inserts or replaces the body stored under id, appending it to the
// set's iteration order if it isn't already resident (spec §4.5: "append
// to list; ... insert into BVH").
func (s *Set[T]) Add(id ObjectID, item T) {
	if h, ok := s.handles[id]; ok {
		s.tree.Remove(h)
	} else {
		s.pos[id] = len(s.order)
		s.order = append(s.order, id)
	}
	s.items[id] = item
	s.handles[id] = s.tree.Insert(toBvhAABB(item.boundingVolume().Box), id)
}

// Get returns the body stored under id.
func (s *Set[T]) Get(id ObjectID) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// CleanRemove removes id and returns the removed item, letting the
// caller run any bookkeeping that depends on the removed value (spec
// §4.5). The list is swap-removed, exactly as spec §4.5 describes.
func (s *Set[T]) CleanRemove(id ObjectID) (T, bool) {
	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	s.tree.Remove(s.handles[id])
	delete(s.handles, id)
	delete(s.items, id)

	i := s.pos[id]
	last := len(s.order) - 1
	movedID := s.order[last]
	s.order[i] = movedID
	s.order = s.order[:last]
	delete(s.pos, id)
	if movedID != id {
		s.pos[movedID] = i
	}
	return item, true
}

// QuickRemove removes id without returning the removed value, for
// callers that don't need it (spec §4.5).
func (s *Set[T]) QuickRemove(id ObjectID) {
	s.CleanRemove(id)
}

// Repartition recomputes id's bounding volume from its current stored
// state and refits the tree — used after a kinematic's NextIso changes
// during the per-tick broad/narrowphase passes (spec §4.6).
func (s *Set[T]) Repartition(id ObjectID) {
	item, ok := s.items[id]
	if !ok {
		return
	}
	s.tree.Update(s.handles[id], toBvhAABB(item.boundingVolume().Box))
}

// ForEachOverlap visits every body whose bounding volume passes the
// layer/mask gate against query and whose box overlaps query.Box,
// stopping early if visit returns false.
func (s *Set[T]) ForEachOverlap(query BoundingVolume, visit func(id ObjectID, item T) bool) {
	stop := false
	s.tree.Query(toBvhAABB(query.Box), func(handle int, id ObjectID) bool {
		item := s.items[id]
		if OverlapsBoundingVolume(query, item.boundingVolume()) {
			if !visit(id, item) {
				stop = true
				return false
			}
		}
		return true
	})
	_ = stop
}

// ForEachOverlappingPair visits every pair of bodies in the set whose
// bounding volumes overlap (layer/mask gated), each pair exactly once —
// the kinematic-vs-kinematic broadphase (spec §4.6).
func (s *Set[T]) ForEachOverlappingPair(visit func(idA, idB ObjectID, a, b T) bool) {
	s.tree.ForEachOverlappingPair(func(hA, hB int, idA, idB ObjectID) bool {
		a, b := s.items[idA], s.items[idB]
		if OverlapsBoundingVolume(a.boundingVolume(), b.boundingVolume()) {
			return visit(idA, idB, a, b)
		}
		return true
	})
}

// Iter visits every body in the set in list order (spec §4.5 "iter():
// list order"; §5 requires list-order iteration to be stable within a
// phase). Since T is expected to be a pointer type, mutating the visited
// value through its pointer is sufficient and no separate IterMut is
// needed.
func (s *Set[T]) Iter(visit func(id ObjectID, item T) bool) {
	for _, id := range s.order {
		if !visit(id, s.items[id]) {
			return
		}
	}
}

func toBvhAABB(a AABB) bvh.AABB {
	return bvh.AABB{
		Min: vecToArr(a.Min),
		Max: vecToArr(a.Max),
	}
}

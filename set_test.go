package kine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStatic(x Real) *Static {
	return &Static{
		ID:    uuid.New(),
		Shape: NewBall(1),
		Iso:   NewIsometry(Vec{X: x}, 0),
		Layer: 1,
		Mask:  1,
	}
}

func TestSetAddAndGet(t *testing.T) {
	set := NewSet[*Static](0.1)
	s := newTestStatic(0)
	set.Add(s.ID, s)

	got, ok := set.Get(s.ID)
	require.True(t, ok)
	require.Equal(t, s, got)
	require.Equal(t, 1, set.Len())
}

func TestSetCleanRemove(t *testing.T) {
	set := NewSet[*Static](0.1)
	s := newTestStatic(0)
	set.Add(s.ID, s)

	removed, ok := set.CleanRemove(s.ID)
	require.True(t, ok)
	require.Equal(t, s, removed)
	require.Equal(t, 0, set.Len())

	_, ok = set.Get(s.ID)
	require.False(t, ok)
}

func TestSetForEachOverlap(t *testing.T) {
	set := NewSet[*Static](0.1)
	near := newTestStatic(0)
	far := newTestStatic(100)
	set.Add(near.ID, near)
	set.Add(far.ID, far)

	query := BoundingVolume{Box: AABB{Min: Vec{X: -2, Y: -2}, Max: Vec{X: 2, Y: 2}}, Layer: 1, Mask: 1}

	var hits []uuid.UUID
	set.ForEachOverlap(query, func(id uuid.UUID, s *Static) bool {
		hits = append(hits, id)
		return true
	})
	require.ElementsMatch(t, []uuid.UUID{near.ID}, hits)
}

func TestSetForEachOverlappingPair(t *testing.T) {
	set := NewSet[*Static](0.1)
	a := newTestStatic(0)
	b := newTestStatic(1)
	c := newTestStatic(100)
	set.Add(a.ID, a)
	set.Add(b.ID, b)
	set.Add(c.ID, c)

	pairs := 0
	set.ForEachOverlappingPair(func(idA, idB uuid.UUID, x, y *Static) bool {
		pairs++
		return true
	})
	require.Equal(t, 1, pairs)
}

func TestSetRepartitionReflectsMovedItem(t *testing.T) {
	set := NewSet[*Static](0.1)
	s := newTestStatic(0)
	set.Add(s.ID, s)

	s.Iso = NewIsometry(Vec{X: 50}, 0)
	set.Repartition(s.ID)

	query := BoundingVolume{Box: AABB{Min: Vec{X: 48}, Max: Vec{X: 52}}, Layer: 1, Mask: 1}
	found := false
	set.ForEachOverlap(query, func(id uuid.UUID, got *Static) bool {
		found = true
		return true
	})
	require.True(t, found)
}

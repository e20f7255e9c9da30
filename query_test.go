package kine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointQueryTriggers(t *testing.T) {
	w := NewWorld(0.01)
	w.AddTrigger(&Trigger{Shape: NewBox(2, 2), Iso: NewIsometry(Vec{X: 5}, 0), Layer: 1, Mask: 1})

	hits := w.PointQueryTriggers(Vec{X: 5}, 1)
	require.Len(t, hits, 1)

	hits = w.PointQueryTriggers(Vec{X: 50}, 1)
	require.Empty(t, hits)
}

func TestShapeQueryKinematics(t *testing.T) {
	w := NewWorld(0.01)
	k := &Kinematic{Shape: NewBall(1), Iso: NewIsometry(Vec{X: 3}, 0), Layer: 1, Mask: 1, Weight: 1}
	w.AddKinematic(k)

	hits := w.ShapeQueryKinematics(NewBall(1), NewIsometry(Vec{X: 3.5}, 0), 1, 1)
	require.Len(t, hits, 1)
	require.Equal(t, k, hits[0])
}

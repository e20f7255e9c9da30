package kine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticBoundingVolume(t *testing.T) {
	s := &Static{
		Shape: NewBall(1),
		Iso:   NewIsometry(Vec{X: 5, Y: 5}, 0),
		Layer: 1,
		Mask:  1,
	}
	bv := s.boundingVolume()
	assert.InDelta(t, 4.0, float64(bv.Box.Min.X), 1e-6)
	assert.InDelta(t, 6.0, float64(bv.Box.Max.X), 1e-6)
}

func TestKinematicBoundingVolumeIsSwept(t *testing.T) {
	k := &Kinematic{
		Shape:   NewBall(1),
		Iso:     NewIsometry(Vec{}, 0),
		NextIso: NewIsometry(Vec{X: 10}, 0),
		Layer:   1,
		Mask:    1,
	}
	bv := k.boundingVolume()
	assert.InDelta(t, -1.0, float64(bv.Box.Min.X), 1e-6)
	assert.InDelta(t, 11.0, float64(bv.Box.Max.X), 1e-6)
}

func TestTriggerBoundingVolume(t *testing.T) {
	tr := &Trigger{
		Shape: NewBox(2, 2),
		Iso:   NewIsometry(Vec{}, 0),
		Layer: 1,
		Mask:  1,
	}
	bv := tr.boundingVolume()
	assert.InDelta(t, -2.0, float64(bv.Box.Min.X), 1e-6)
	assert.InDelta(t, 2.0, float64(bv.Box.Max.X), 1e-6)
}

//go:build mask32

package kine

// Mask is the bitfield width used for collision layers/masks. This file
// is compiled with -tags mask32, narrowing every layer/mask field to 32
// bits.
type Mask = uint32

// MaskAll is a mask that intersects every other mask (all bits set). It
// is the probe mask of PointQueryTriggers. A Static is not given it
// implicitly: the layer/mask tests read the Static's own Mask field.
const MaskAll Mask = ^Mask(0)

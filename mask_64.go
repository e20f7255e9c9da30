//go:build !mask32

package kine

// Mask is the bitfield width used for collision layers/masks. Default
// build uses 64 bits; compile with -tags mask32 for a 32-bit field
// (mask_32.go) on platforms where the extra width isn't needed.
type Mask = uint64

// MaskAll is a mask that intersects every other mask (all bits set). It
// is the probe mask of PointQueryTriggers. A Static is not given it
// implicitly: the layer/mask tests read the Static's own Mask field.
const MaskAll Mask = ^Mask(0)

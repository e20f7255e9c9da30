package kine

// masksIntersect reports whether two bitfields share at least one set bit.
func masksIntersect(a, b Mask) bool {
	return a&b != 0
}

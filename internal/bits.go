package internal

// Ones returns a value with the low count bits set.
func Ones(count uint) uint32 {
	if count >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << count) - 1
}

// CeilLog2 returns the number of bits needed to encode n distinct values.
func CeilLog2(n int) (bits uint) {
	for (1 << bits) < n {
		bits++
	}
	return
}

package ifaddr

// PrefixLength counts the leading one-bits of a netmask, scanning bytes
// most-significant first and stopping at the first zero bit. Bits after
// that zero are ignored, so a non-contiguous mask like 255.0.255.0 still
// yields 8. The second return is false when no mask is present.
func PrefixLength(mask []byte) (int, bool) {
	if len(mask) == 0 {
		return 0, false
	}
	prefix := 0
	for _, b := range mask {
		if b == 0xff {
			prefix += 8
			continue
		}
		for bit := 7; bit >= 0; bit-- {
			if b&(1<<uint(bit)) == 0 {
				return prefix, true
			}
			prefix++
		}
	}
	return prefix, true
}

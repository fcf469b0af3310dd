package rope

// boundary.go collects the boundary-safety checks every split point must
// pass: code that picks a split point must refuse positions inside a
// UTF-8 scalar value or between \r and \n, and -- when grapheme
// enforcement is on -- inside a grapheme cluster.

// isCharBoundary reports whether pos is not in the middle of a UTF-8
// scalar value, i.e. the byte at pos (if any) is not a continuation byte.
func isCharBoundary(data []byte, pos int) bool {
	if pos <= 0 || pos >= len(data) {
		return true
	}
	return data[pos]&0xC0 != 0x80
}

// isCRLFBoundary reports whether splitting data at pos would separate a
// \r from an immediately following \n.
func isCRLFBoundary(data []byte, pos int) bool {
	if pos <= 0 || pos >= len(data) {
		return true
	}
	return !(data[pos-1] == '\r' && data[pos] == '\n')
}

// isSafeSplit reports whether pos is a legal leaf-boundary candidate: a
// scalar-value boundary that does not split a CRLF pair, and -- when cfg
// requires it -- does not split a grapheme cluster.
func isSafeSplit(data []byte, pos int, cfg *Config) bool {
	if !isCharBoundary(data, pos) {
		return false
	}
	if !isCRLFBoundary(data, pos) {
		return false
	}
	if cfg != nil && cfg.EnforceGraphemeBoundaries {
		return isGraphemeBoundary(data, pos)
	}
	return true
}

// nearestSafeSplit searches outward from preferred, one byte at a time
// and checking the lower candidate first, across the whole buffer for the
// nearest legal split point. Because 0 and len(data) always count as
// safe, it returns one of them when data has no legal interior split
// point (the whole buffer is one indivisible unit); ok is true in every
// case the loop reaches.
func nearestSafeSplit(data []byte, preferred int, cfg *Config) (int, bool) {
	if preferred < 0 {
		preferred = 0
	}
	if preferred > len(data) {
		preferred = len(data)
	}
	if isSafeSplit(data, preferred, cfg) {
		return preferred, true
	}
	for d := 1; d < len(data); d++ {
		if preferred-d >= 0 && isSafeSplit(data, preferred-d, cfg) {
			return preferred - d, true
		}
		if preferred+d <= len(data) && isSafeSplit(data, preferred+d, cfg) {
			return preferred + d, true
		}
	}
	return 0, false
}

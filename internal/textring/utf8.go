package textring

import "unicode/utf8"

// IsLeadByte reports whether b can start a UTF-8 encoded character: an ASCII
// byte (0xxxxxxx) or the lead of a 2, 3 or 4 byte sequence (110xxxxx,
// 1110xxxx, 11110xxx). Continuation bytes (10xxxxxx) and 0xF8-0xFF are not.
func IsLeadByte(b byte) bool {
	return b&0b1000_0000 == 0b0000_0000 ||
		b&0b1110_0000 == 0b1100_0000 ||
		b&0b1111_0000 == 0b1110_0000 ||
		b&0b1111_1000 == 0b1111_0000
}

// LeadIndex returns the index of the first lead byte in p, or len(p) if
// there is none.
func LeadIndex(p []byte) int {
	for i, b := range p {
		if IsLeadByte(b) {
			return i
		}
	}
	return len(p)
}

// TrimIncomplete drops a trailing multi-byte sequence whose continuation
// bytes have not been written yet. Only the last utf8.UTFMax bytes are
// inspected.
func TrimIncomplete(p []byte) []byte {
	lo := len(p) - utf8.UTFMax
	if lo < 0 {
		lo = 0
	}
	for i := len(p) - 1; i >= lo; i-- {
		if !IsLeadByte(p[i]) {
			continue
		}
		if !utf8.FullRune(p[i:]) {
			return p[:i]
		}
		return p
	}
	return p
}

// ValidStart returns the index just past the last invalid UTF-8 sequence in
// p, so that p[ValidStart(p):] is valid UTF-8. It returns 0 when p is valid.
// An incomplete trailing sequence counts as invalid; trim it with
// TrimIncomplete first.
func ValidStart(p []byte) int {
	start := 0
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			start = i
		}
	}
	return start
}

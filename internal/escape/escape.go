// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape converts between raw strings and their JSON encodings.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

const hexDigit = "0123456789abcdef"

// Quote encodes src as a JSON string value, escaping characters as required
// and adding the enclosing double quotation marks.
func Quote(src string) []byte {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	rest := mem.S(src)
	for rest.Len() > 0 {
		r, n := mem.DecodeRune(rest)
		rest = rest.SliceFrom(n)

		if r >= utf8.RuneSelf {
			var rbuf [utf8.UTFMax]byte
			k := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:k]...)
			continue
		}
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r == '\b':
			buf = append(buf, '\\', 'b')
		case r == '\f':
			buf = append(buf, '\\', 'f')
		case r == '\n':
			buf = append(buf, '\\', 'n')
		case r == '\r':
			buf = append(buf, '\\', 'r')
		case r == '\t':
			buf = append(buf, '\\', 't')
		case r < ' ':
			buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
		default:
			buf = append(buf, byte(r))
		}
	}
	return append(buf, '"')
}

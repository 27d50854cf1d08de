// Package input reads a single bounded line from a stream.
package input

import (
	"io"
)

// MaxLineLen is the most bytes ReadLine stores from one line.
// Anything past it is truncated and left unread in the stream.
const MaxLineLen = 149

// ReadLine reads bytes from r until a newline, EOF, or MaxLineLen bytes,
// whichever comes first. The newline (and a '\r' directly before it) is
// consumed but not returned. An empty or unavailable stream yields an
// empty line; ReadLine never reports stream errors to the caller.
func ReadLine(r io.ByteReader) (string, error) {
	buf := make([]byte, 0, MaxLineLen)

	for len(buf) < MaxLineLen {
		b, err := r.ReadByte()
		if err != nil {
			// EOF or a broken stream both end the line here.
			return string(buf), nil
		}
		if b == '\n' {
			return string(trimCR(buf)), nil
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

func trimCR(buf []byte) []byte {
	if n := len(buf); n > 0 && buf[n-1] == '\r' {
		return buf[:n-1]
	}
	return buf
}

package textline

import "bytes"

// scanLines is a bufio.SplitFunc that recognises "\n", "\r\n" and a bare "\r"
// as line terminators, none of which is part of the returned token.
// The stock bufio.ScanLines treats a lone carriage return as line content,
// which is not how classic buffered line readers behave.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// a trailing "\r" may still be the first half of a "\r\n"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		// the final line is produced even without a terminator
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Package ninja translates an evaluated dependency graph into a ninja build
// description and a companion shell wrapper.
package ninja

// scanState is the translator's quoting context, carried byte to byte.
// quote holds the byte that opened the current quoted region ('\'', '"' or
// '`'), or 0 outside any quoted region. backslash reports whether the
// previous byte was an escaping backslash.
type scanState struct {
	quote     byte
	backslash bool
}

// translateCommand appends the ninja-safe form of one raw shell command to
// buf and returns the appended span. The caller must have stripped leading
// whitespace from in.
//
// The scan recognizes just enough shell to be safe inside a ninja command:
// an unquoted, unescaped '#' cuts the command short, '$' is doubled so
// ninja's own substitution leaves it alone, tabs become spaces and escaped
// newlines fold into a spacing joiner. Trailing whitespace and semicolons
// are stripped so the caller can append its own separators.
func translateCommand(buf *cmdBuffer, in string) span {
	start := buf.len()
	var st scanState
	done := false

	for i := 0; i < len(in) && !done; i++ {
		c := in[i]
		switch c {
		case '#':
			if st.quote == 0 && !st.backslash {
				done = true
				break
			}
			fallthrough

		case '\'', '"', '`':
			if st.quote != 0 {
				if st.quote == c {
					st.quote = 0
				}
			} else if !st.backslash {
				st.quote = c
			}
			buf.writeByte(c)

		case '$':
			buf.writeString("$$")

		case '\t':
			buf.writeByte(' ')

		case '\n':
			if st.backslash {
				// Line continuation: the backslash already in the buffer
				// becomes the joining space.
				buf.setLast(' ')
			} else {
				buf.writeByte(' ')
			}

		case '\\':
			st.backslash = !st.backslash
			buf.writeByte('\\')

		default:
			buf.writeByte(c)
			st.backslash = false
		}
	}

	for buf.len() > 0 {
		c := buf.last()
		if !isSpace(c) && c != ';' {
			break
		}
		buf.truncateLast()
	}

	end := buf.len()
	if end < start {
		// The whole input was whitespace and separators; stripping may have
		// eaten into the preceding joiner as well.
		start = end
	}
	return span{start: start, end: end}
}

// isSpace matches C's isspace for the ASCII bytes command text is made of.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// leadingSpace is the cutset of bytes skipped before translating a command.
const leadingSpace = " \t\n\v\f\r"

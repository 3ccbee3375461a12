package lua

// translateListLiterals rewrites bracketed list literals such as
// ["Hello","Bonjour"] into Lua table constructors {"Hello","Bonjour"}.
// A bracket is treated as indexing, and left alone, when it directly
// follows an identifier, a closing bracket or a string literal. Brackets
// inside string literals are never touched.
func translateListLiterals(expr string) string {
	out := []byte(expr)

	var quote byte    // active string delimiter, 0 when outside strings
	escaped := false  // previous char was a backslash inside a string
	var stack []bool  // true when the matching '[' was rewritten

	lastSignificant := byte(0)
	for i := 0; i < len(out); i++ {
		c := out[i]

		if quote != 0 {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
				lastSignificant = c
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case '[':
			literal := !isIndexingContext(lastSignificant)
			if literal {
				out[i] = '{'
			}
			stack = append(stack, literal)
		case ']':
			if len(stack) > 0 {
				if stack[len(stack)-1] {
					out[i] = '}'
				}
				stack = stack[:len(stack)-1]
			}
		}

		if c != ' ' && c != '\t' {
			lastSignificant = out[i]
		}
	}

	return string(out)
}

// isIndexingContext reports whether a '[' following this character indexes
// a value rather than opening a list literal.
func isIndexingContext(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == ')', c == ']', c == '}', c == '"', c == '\'':
		return true
	}
	return false
}

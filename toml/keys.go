package toml

import (
	"fmt"
	"strings"
)

// parseKeyParts splits a raw key expression — a bare/dotted/quoted key as
// it appears before '=' in a key-value line or inside a "[...]" header —
// into its dotted segments. Quoted segments ("a.b" or 'a.b') are taken
// literally, including any '.' they contain; basic-quoted segments go
// through decodeBasicString so escapes resolve the same way they do in
// string values.
func parseKeyParts(s string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	quote := byte(0)
	quoted := false
	c := newCursor(s, 0)

	flush := func() error {
		part := cur.String()
		if !quoted {
			part = strings.TrimSpace(part)
		}
		if part == "" {
			return fmt.Errorf("empty key segment")
		}
		parts = append(parts, part)
		cur.Reset()
		quoted = false
		return nil
	}

	for !c.eof() {
		ch := c.peek()
		if quote != 0 {
			if quote == '"' && ch == '\\' && !c.eof() {
				cur.WriteByte(c.advance())
				if !c.eof() {
					cur.WriteByte(c.advance())
				}
				continue
			}
			if ch == quote {
				closingQuote := quote
				quote = 0
				quoted = true
				c.advance()
				if closingQuote == '"' {
					decoded, err := decodeBasicString(cur.String(), false)
					if err != nil {
						return nil, fmt.Errorf("invalid escape in quoted key: %w", err)
					}
					cur.Reset()
					cur.WriteString(decoded)
				}
				continue
			}
			cur.WriteByte(c.advance())
			continue
		}
		switch {
		case ch == '"' || ch == '\'':
			if strings.TrimSpace(cur.String()) != "" {
				return nil, fmt.Errorf("unexpected quote in key")
			}
			quote = ch
			cur.Reset()
			c.advance()
		case ch == '.':
			if err := flush(); err != nil {
				return nil, err
			}
			c.advance()
		case ch == ' ' || ch == '\t':
			c.advance()
		default:
			cur.WriteByte(c.advance())
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quoted key")
	}
	if quoted || strings.TrimSpace(cur.String()) != "" {
		if err := flush(); err != nil {
			return nil, err
		}
	} else if len(parts) == 0 {
		return nil, fmt.Errorf("empty key")
	}

	return parts, nil
}

// stripCommentPreserveStrings removes a trailing "# ..." comment from a
// physical line, being careful not to treat a '#' inside a quoted string
// as the start of one.
func stripCommentPreserveStrings(s string) string {
	var b strings.Builder
	basic, literal := false, false
	basicTriple, literalTriple := false, false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if basic {
			if ch == '\\' && i+1 < len(s) {
				b.WriteByte(ch)
				i++
				b.WriteByte(s[i])
				continue
			}
			if basicTriple {
				if i+2 < len(s) && s[i] == '"' && s[i+1] == '"' && s[i+2] == '"' {
					basic, basicTriple = false, false
					b.WriteString(`"""`)
					i += 2
					continue
				}
			} else if ch == '"' {
				basic = false
			}
			b.WriteByte(ch)
			continue
		}
		if literal {
			if literalTriple {
				if i+2 < len(s) && s[i] == '\'' && s[i+1] == '\'' && s[i+2] == '\'' {
					literal, literalTriple = false, false
					b.WriteString(`'''`)
					i += 2
					continue
				}
			} else if ch == '\'' {
				literal = false
			}
			b.WriteByte(ch)
			continue
		}
		switch {
		case ch == '"':
			if i+2 < len(s) && s[i+1] == '"' && s[i+2] == '"' {
				basic, basicTriple = true, true
				b.WriteString(`"""`)
				i += 2
			} else {
				basic = true
				b.WriteByte(ch)
			}
		case ch == '\'':
			if i+2 < len(s) && s[i+1] == '\'' && s[i+2] == '\'' {
				literal, literalTriple = true, true
				b.WriteString(`'''`)
				i += 2
			} else {
				literal = true
				b.WriteByte(ch)
			}
		case ch == '#':
			return b.String()
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// findUnquotedEqual returns the byte offset of the first '=' outside any
// quoted span, or -1 if none exists.
func findUnquotedEqual(s string) int {
	basic, literal := false, false
	basicTriple, literalTriple := false, false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if basic {
			if ch == '\\' {
				i++
				continue
			}
			if basicTriple {
				if i+2 < len(s) && s[i] == '"' && s[i+1] == '"' && s[i+2] == '"' {
					basic, basicTriple = false, false
					i += 2
				}
				continue
			}
			if ch == '"' {
				basic = false
			}
			continue
		}
		if literal {
			if literalTriple {
				if i+2 < len(s) && s[i] == '\'' && s[i+1] == '\'' && s[i+2] == '\'' {
					literal, literalTriple = false, false
					i += 2
				}
				continue
			}
			if ch == '\'' {
				literal = false
			}
			continue
		}
		switch {
		case ch == '"':
			if i+2 < len(s) && s[i+1] == '"' && s[i+2] == '"' {
				basic, basicTriple = true, true
				i += 2
			} else {
				basic = true
			}
		case ch == '\'':
			if i+2 < len(s) && s[i+1] == '\'' && s[i+2] == '\'' {
				literal, literalTriple = true, true
				i += 2
			} else {
				literal = true
			}
		case ch == '=':
			return i
		}
	}
	return -1
}

// splitTopLevel splits s on sep, ignoring separators nested inside
// []/{}/quoted spans — used for both array elements and inline-table
// entries, which share the same nesting rules.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	depthBracket, depthBrace := 0, 0
	basic, literal := false, false
	basicTriple, literalTriple := false, false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if basic {
			cur.WriteByte(ch)
			if ch == '\\' && i+1 < len(s) {
				i++
				cur.WriteByte(s[i])
				continue
			}
			if basicTriple {
				if i+2 < len(s) && s[i] == '"' && s[i+1] == '"' && s[i+2] == '"' {
					basic, basicTriple = false, false
					cur.WriteString(`""`)
					i += 2
				}
			} else if ch == '"' {
				basic = false
			}
			continue
		}
		if literal {
			cur.WriteByte(ch)
			if literalTriple {
				if i+2 < len(s) && s[i] == '\'' && s[i+1] == '\'' && s[i+2] == '\'' {
					literal, literalTriple = false, false
					cur.WriteString(`''`)
					i += 2
				}
			} else if ch == '\'' {
				literal = false
			}
			continue
		}
		switch ch {
		case '"':
			if i+2 < len(s) && s[i+1] == '"' && s[i+2] == '"' {
				basic, basicTriple = true, true
				cur.WriteString(`"""`)
				i += 2
			} else {
				basic = true
				cur.WriteByte(ch)
			}
		case '\'':
			if i+2 < len(s) && s[i+1] == '\'' && s[i+2] == '\'' {
				literal, literalTriple = true, true
				cur.WriteString(`'''`)
				i += 2
			} else {
				literal = true
				cur.WriteByte(ch)
			}
		case '[':
			depthBracket++
			cur.WriteByte(ch)
		case ']':
			depthBracket--
			cur.WriteByte(ch)
		case '{':
			depthBrace++
			cur.WriteByte(ch)
		case '}':
			depthBrace--
			cur.WriteByte(ch)
		case sep:
			if depthBracket == 0 && depthBrace == 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			} else {
				cur.WriteByte(ch)
			}
		default:
			cur.WriteByte(ch)
		}
	}
	if strings.TrimSpace(cur.String()) != "" || len(parts) > 0 && cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

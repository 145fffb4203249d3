package toml

import (
	"bufio"
	"io"
	"strings"
)

// Parse reads a complete TOML document from r and returns its root
// Table. The parser is single-pass, line-oriented, and synchronous: it
// holds no goroutines and is safe to discard at any point (see spec §5).
func Parse(r io.Reader) (*Table, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
		root:    NewTable(),
		state:   newTableState(),
	}
	p.scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	p.cur = p.root

	for p.scanner.Scan() {
		p.lineNo++
		raw := p.scanner.Text()
		line := strings.TrimSpace(stripCommentPreserveStrings(raw))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if err := p.parseHeaderLine(line); err != nil {
				return nil, err
			}
			continue
		}

		idx := findUnquotedEqual(line)
		if idx < 0 {
			return nil, newParseError(p.lineNo, "expected key-value pair or table header")
		}
		if err := p.parseKeyValueLine(line, idx); err != nil {
			return nil, err
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, wrapParseError(p.lineNo, err, "reading input")
	}
	return p.root, nil
}

// parser drives the line-by-line scan. cur is a direct pointer to the
// table that unqualified key-value lines insert into — the "current
// table" of spec §4.D — kept as a live pointer rather than a re-resolved
// path because the whole tree stays reachable through root for the
// parser's entire (synchronous, single-goroutine) lifetime.
type parser struct {
	scanner *bufio.Scanner
	root    *Table
	cur     *Table
	curPath []string
	lineNo  int
	state   *tableState
}

// parseHeaderLine handles a "[table]" or "[[array.of.tables]]" line. A
// header must close on the same physical line; one that doesn't is
// reported as unterminated at that line, and no further lines are read.
func (p *parser) parseHeaderLine(line string) error {
	isArray := strings.HasPrefix(line, "[[")
	var name string
	if isArray {
		if !strings.HasSuffix(line, "]]") {
			return newParseError(p.lineNo, "unterminated array-of-tables header")
		}
		name = strings.TrimSpace(line[2 : len(line)-2])
	} else {
		if !strings.HasSuffix(line, "]") {
			return newParseError(p.lineNo, "unterminated table header")
		}
		name = strings.TrimSpace(line[1 : len(line)-1])
	}
	if name == "" {
		return newParseError(p.lineNo, "empty table name")
	}
	parts, err := parseKeyParts(name)
	if err != nil {
		return wrapParseError(p.lineNo, err, "%s", err.Error())
	}

	if isArray {
		return p.openTableArrayElement(parts)
	}
	return p.openTable(parts)
}

// openTable resolves/creates every intermediate segment of parts as a
// table (implicitly creating ones that don't exist yet) and makes the
// final segment the new "current table", enforcing the redefinition
// rules of invariants 2-4: a path already closed by an explicit [table],
// a dotted key, or a scalar cannot be reopened.
func (p *parser) openTable(parts []string) error {
	target, err := p.state.declareTable(parts, p.lineNo)
	if err != nil {
		return err
	}

	t := p.root
	for i, seg := range parts {
		full := dottedJoin(parts[:i+1])
		n, ok := t.entries[seg]
		if !ok {
			next := NewTable()
			t.entries[seg] = next
			t = next
			continue
		}
		switch v := n.(type) {
		case *Table:
			t = v
		case *TableArray:
			last, ok := v.Last()
			if !ok {
				return newParseError(p.lineNo, "empty array of tables at %q", full)
			}
			t = last
		default:
			return newParseError(p.lineNo, "key %q already has a non-table value", full)
		}
	}
	p.cur = t
	p.curPath = target
	return nil
}

// openTableArrayElement appends a fresh table to the array of tables
// named by parts (creating the array on first use) and makes it current.
func (p *parser) openTableArrayElement(parts []string) error {
	full := dottedJoin(parts)
	parentParts := parts[:len(parts)-1]
	last := parts[len(parts)-1]

	resolved, err := p.state.declareTableArrayElement(parts, p.lineNo)
	if err != nil {
		return err
	}

	parent := p.root
	for i, seg := range parentParts {
		segFull := dottedJoin(parentParts[:i+1])
		n, ok := parent.entries[seg]
		if !ok {
			next := NewTable()
			parent.entries[seg] = next
			parent = next
			continue
		}
		switch v := n.(type) {
		case *Table:
			parent = v
		case *TableArray:
			lastTbl, ok := v.Last()
			if !ok {
				return newParseError(p.lineNo, "empty array of tables at %q", segFull)
			}
			parent = lastTbl
		default:
			return newParseError(p.lineNo, "key %q already has a non-table value", segFull)
		}
	}

	existing, ok := parent.entries[last]
	var arr *TableArray
	if !ok {
		arr = NewTableArray()
		parent.entries[last] = arr
	} else {
		a, ok := existing.(*TableArray)
		if !ok {
			return newParseError(p.lineNo, "key %q already defined and is not an array of tables", full)
		}
		arr = a
	}
	p.cur = arr.Append()
	p.curPath = resolved
	return nil
}

// parseKeyValueLine parses "key = value" (the value possibly continuing
// across further physical lines for multi-line strings/arrays) and
// inserts it into the current table, respecting dotted keys.
func (p *parser) parseKeyValueLine(line string, eqIdx int) error {
	keyPart := strings.TrimSpace(line[:eqIdx])
	valPart := strings.TrimSpace(line[eqIdx+1:])
	if valPart == "" {
		return newParseError(p.lineNo, "missing value")
	}

	parts, err := parseKeyParts(keyPart)
	if err != nil {
		return wrapParseError(p.lineNo, err, "%s", err.Error())
	}
	if len(parts) == 0 {
		return newParseError(p.lineNo, "empty key")
	}

	startLine := p.lineNo
	full, err := p.consumeValue(valPart)
	if err != nil {
		return wrapParseError(p.lineNo, err, "%s", err.Error())
	}

	if err := p.state.declareScalarOrDottedPath(p.curPath, parts, startLine); err != nil {
		return err
	}

	t := p.cur
	for i, seg := range parts[:len(parts)-1] {
		n, ok := t.entries[seg]
		if !ok {
			next := NewTable()
			t.entries[seg] = next
			t = next
			continue
		}
		sub, ok := n.(*Table)
		if !ok {
			return newParseError(startLine, "key %q already has a non-table value", dottedJoin(append(append([]string{}, p.curPath...), parts[:i+1]...)))
		}
		t = sub
	}
	last := parts[len(parts)-1]
	if t.Has(last) {
		return newParseError(startLine, "duplicate key %q", dottedJoin(append(append([]string{}, p.curPath...), parts...)))
	}

	v, err := parseValueToken(full, startLine)
	if err != nil {
		return err
	}
	t.entries[last] = v
	return nil
}

// consumeValue returns the full text of a value that may span multiple
// physical lines: an unterminated triple-quoted string, or an array/
// inline-table whose brackets/braces aren't yet balanced. It pulls
// further lines from the scanner exactly as the teacher's consumeValue
// does, advancing p.lineNo as it goes so error positions stay accurate.
func (p *parser) consumeValue(initial string) (string, error) {
	trimmed := strings.TrimSpace(initial)

	if strings.HasPrefix(trimmed, `"""`) && !strings.Contains(trimmed[3:], `"""`) {
		return p.consumeUntilDelimiter(initial, `"""`)
	}
	if strings.HasPrefix(trimmed, `'''`) && !strings.Contains(trimmed[3:], `'''`) {
		return p.consumeUntilDelimiter(initial, `'''`)
	}
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return p.consumeUntilBalanced(initial)
	}
	return initial, nil
}

func (p *parser) consumeUntilDelimiter(initial, delim string) (string, error) {
	var b strings.Builder
	b.WriteString(initial)
	for {
		if !p.scanner.Scan() {
			return "", newParseError(p.lineNo, "unterminated multi-line string")
		}
		p.lineNo++
		b.WriteString("\n")
		b.WriteString(p.scanner.Text())
		if strings.Contains(b.String()[len(initial):], delim) {
			return b.String(), nil
		}
	}
}

func (p *parser) consumeUntilBalanced(initial string) (string, error) {
	var b strings.Builder
	b.WriteString(initial)
	depth := bracketDepth(initial)
	for depth > 0 {
		if !p.scanner.Scan() {
			return "", newParseError(p.lineNo, "unterminated array or inline table")
		}
		p.lineNo++
		next := stripCommentPreserveStrings(p.scanner.Text())
		b.WriteString("\n")
		b.WriteString(next)
		depth += bracketDepth(next)
	}
	return b.String(), nil
}

// bracketDepth counts net '['/'{' opens minus ']'/'}' closes in s,
// skipping over quoted string content so brackets inside strings don't
// confuse the balance count.
func bracketDepth(s string) int {
	depth := 0
	quote := byte(0)
	triple := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			if ch == '\\' && quote == '"' {
				i++
				continue
			}
			if triple {
				if i+2 < len(s) && s[i] == quote && s[i+1] == quote && s[i+2] == quote {
					quote, triple = 0, false
					i += 2
				}
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			if i+2 < len(s) && s[i+1] == ch && s[i+2] == ch {
				quote, triple = ch, true
				i += 2
			} else {
				quote = ch
			}
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		}
	}
	return depth
}

func dottedJoin(parts []string) string { return strings.Join(parts, ".") }

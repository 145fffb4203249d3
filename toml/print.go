package toml

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Print serializes root as TOML text and writes it to w. Keys within a
// table are printed in sorted order so output is deterministic across
// runs, matching how maurice-toml's encoder sorts keys before writing
// (cmd/encoder/main.go uses sort.Strings for the same reason).
func Print(w io.Writer, root *Table) error {
	p := &printer{w: w}
	return p.printTable(root, nil)
}

// Sprint is a convenience wrapper over Print that returns the TOML text
// as a string.
func Sprint(root *Table) (string, error) {
	var b strings.Builder
	if err := Print(&b, root); err != nil {
		return "", err
	}
	return b.String(), nil
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) writef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// printTable renders every scalar/array key of t first (in sorted
// order), then recurses depth-first into each sub-table and table-array,
// printing a "[a.b]" or "[[a.b]]" header before its body — a standard
// depth-first walk, same ordering TOML expects.
func (p *printer) printTable(t *Table, path []string) error {
	keys := t.Keys()
	sort.Strings(keys)

	var scalarKeys, tableKeys, arrayKeys []string
	for _, k := range keys {
		n := t.entries[k]
		switch {
		case n.isTable():
			tableKeys = append(tableKeys, k)
		case n.isTableArray():
			arrayKeys = append(arrayKeys, k)
		default:
			scalarKeys = append(scalarKeys, k)
		}
	}

	for _, k := range scalarKeys {
		p.writef("%s = %s\n", printKey(k), printValue(t.entries[k]))
		if p.err != nil {
			return p.err
		}
	}

	for _, k := range tableKeys {
		childPath := append(append([]string{}, path...), k)
		p.writef("\n[%s]\n", strings.Join(printKeyPath(childPath), "."))
		if p.err != nil {
			return p.err
		}
		if err := p.printTable(t.entries[k].(*Table), childPath); err != nil {
			return err
		}
	}

	for _, k := range arrayKeys {
		childPath := append(append([]string{}, path...), k)
		arr := t.entries[k].(*TableArray)
		for i := 0; i < arr.Len(); i++ {
			elem, _ := arr.At(i)
			p.writef("\n[[%s]]\n", strings.Join(printKeyPath(childPath), "."))
			if p.err != nil {
				return p.err
			}
			if err := p.printTable(elem, childPath); err != nil {
				return err
			}
		}
	}

	return p.err
}

// printKeyPath quotes any path segment that isn't a valid bare key.
func printKeyPath(path []string) []string {
	out := make([]string, len(path))
	for i, seg := range path {
		out[i] = printKey(seg)
	}
	return out
}

func printKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		if !isBareKeyByte(k[i]) {
			return strconv.Quote(k)
		}
	}
	return k
}

// printValue renders a single Node as it would appear on the right-hand
// side of "key = ...".
func printValue(n Node) string {
	switch v := n.(type) {
	case *Scalar:
		return printScalar(v)
	case *Array:
		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			el, _ := v.Index(i)
			parts[i] = printValue(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

func printScalar(s *Scalar) string {
	switch s.kind {
	case KindString:
		return strconv.Quote(s.str)
	case KindInt:
		return strconv.FormatInt(s.i, 10)
	case KindFloat:
		return printFloat(s.f)
	case KindBool:
		if s.b {
			return "true"
		}
		return "false"
	case KindDatetime:
		return s.dt.String()
	default:
		return ""
	}
}

func printFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

package tomlctl

import (
	"encoding/json"
	"fmt"

	"github.com/dzjyyds666/tomlconf/toml"
	"github.com/spf13/cobra"
)

var parseStdinCmd = &cobra.Command{
	Use:   "parse-stdin",
	Short: "parse TOML from stdin and print the JSON-tagged conformance form",
	Args:  cobra.NoArgs,
	RunE:  runParseStdin,
}

func runParseStdin(cmd *cobra.Command, args []string) error {
	root, err := toml.Parse(cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, err := json.Marshal(tableToTagged(root))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// tableToTagged renders a *toml.Table as a plain JSON object, mirroring
// the shape maurice-toml's cmd/decoder/main.go produces: scalars become
// {"type": "...", "value": "..."} leaves, tables become bare objects,
// arrays of values become JSON arrays of tagged leaves, and table-arrays
// become JSON arrays of objects. Grounded on that decoder's
// documentToTaggedJSON/valueToTagged (pack reference; this package has no
// untyped AST to walk, so the conversion is a direct switch over the
// typed Node kinds instead of re-parsing raw token text).
func tableToTagged(t *toml.Table) map[string]any {
	out := make(map[string]any, t.Len())
	t.Range(func(key string, n toml.Node) bool {
		out[key] = nodeToTagged(n)
		return true
	})
	return out
}

func nodeToTagged(n toml.Node) any {
	switch n.Kind() {
	case toml.KindTable:
		return tableToTagged(n.(*toml.Table))
	case toml.KindTableArray:
		arr := n.(*toml.TableArray)
		out := make([]any, 0, arr.Len())
		for i := 0; i < arr.Len(); i++ {
			elem, _ := arr.At(i)
			out = append(out, tableToTagged(elem))
		}
		return out
	case toml.KindArray:
		a := n.(*toml.Array)
		out := make([]any, 0, a.Len())
		for i := 0; i < a.Len(); i++ {
			el, _ := a.Index(i)
			out = append(out, nodeToTagged(el))
		}
		return out
	default:
		return scalarToTagged(n.(*toml.Scalar))
	}
}

func scalarToTagged(s *toml.Scalar) map[string]string {
	switch s.Kind() {
	case toml.KindString:
		v, _ := s.AsString()
		return tagged("string", v)
	case toml.KindInt:
		v, _ := s.AsInt()
		return tagged("integer", fmt.Sprintf("%d", v))
	case toml.KindFloat:
		v, _ := s.AsFloat()
		return tagged("float", formatTaggedFloat(v))
	case toml.KindBool:
		v, _ := s.AsBool()
		return tagged("bool", fmt.Sprintf("%t", v))
	case toml.KindDatetime:
		dt, _ := s.AsDatetime()
		return tagged(datetimeTag(dt), dt.String())
	default:
		return tagged("string", "")
	}
}

func tagged(typ, value string) map[string]string {
	return map[string]string{"type": typ, "value": value}
}

func formatTaggedFloat(f float64) string {
	return fmt.Sprintf("%v", f)
}

// datetimeTag names the kind tag for a Datetime leaf. spec.md closes the
// conformance kind set to {string, integer, float, datetime, bool} — no
// local-date/local-time/local-datetime variants exist in this package's
// data model, so every Datetime tags as "datetime".
func datetimeTag(dt toml.Datetime) string {
	return "datetime"
}

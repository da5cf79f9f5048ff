package base

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by -format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Render writes v to the UI in the selected format.
func (c *Command) Render(v any) error {
	out, err := Format(c.flagFormat, v)
	if err != nil {
		return err
	}
	c.UI.Output(out)
	return nil
}

// Format renders v as json, yaml or text. Values are first normalized
// through their JSON encoding so every format shows the wire field names.
func Format(format string, v any) (string, error) {
	generic, err := normalize(v)
	if err != nil {
		return "", err
	}

	switch format {
	case "", FormatJSON:
		out, err := json.MarshalIndent(generic, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode output: %w", err)
		}
		return string(out), nil

	case FormatYAML:
		out, err := yaml.Marshal(generic)
		if err != nil {
			return "", fmt.Errorf("failed to encode output: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil

	case FormatText:
		var b strings.Builder
		writeText(&b, generic, "")
		return strings.TrimRight(b.String(), "\n"), nil

	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return integers(generic), nil
}

// integers turns whole float64 values back into int64 so yaml does not print
// them in exponent form.
func integers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			val[k] = integers(child)
		}
	case []any:
		for i, child := range val {
			val[i] = integers(child)
		}
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return int64(val)
		}
	}
	return v
}

// writeText prints maps as "Label: value" lines, nesting with indentation.
// Keys are sorted.
func writeText(b *strings.Builder, v any, indent string) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			label := textLabel(k)
			switch child := val[k].(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s%s:\n", indent, label)
				writeText(b, child, indent+"  ")
			default:
				fmt.Fprintf(b, "%s%s: %s\n", indent, label, scalar(child))
			}
		}

	case []any:
		if len(val) == 0 {
			fmt.Fprintf(b, "%s(none)\n", indent)
		}
		for i, item := range val {
			switch item.(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s- [%d]\n", indent, i)
				writeText(b, item, indent+"  ")
			default:
				fmt.Fprintf(b, "%s- %s\n", indent, scalar(item))
			}
		}

	default:
		fmt.Fprintf(b, "%s%s\n", indent, scalar(val))
	}
}

func textLabel(key string) string {
	words := strcase.ToDelimited(key, ' ')
	if words == "" {
		return key
	}
	first, size := utf8.DecodeRuneInString(words)
	return string(unicode.ToUpper(first)) + words[size:]
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

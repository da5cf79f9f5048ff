package base

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// FlagSet wraps flag.FlagSet with help rendering and presence checks.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned rather than exiting, and the
// standard library's own usage output is silenced; commands print Help.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help renders the flags for a command's help text.
func (f *FlagSet) Help() string {
	var flags []*flag.Flag
	f.VisitAll(func(fl *flag.Flag) {
		flags = append(flags, fl)
	})
	if len(flags) == 0 {
		return ""
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].Name < flags[j].Name })

	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	for _, fl := range flags {
		fmt.Fprintf(&b, "\n  -%s\n      %s", fl.Name, fl.Usage)
		if fl.DefValue != "" && fl.DefValue != "[]" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// IsSet reports whether name was given on the command line.
func (f *FlagSet) IsSet(name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// StringSliceVar defines a flag that may be repeated or given a
// comma-separated list.
func (f *FlagSet) StringSliceVar(p *[]string, name, usage string) {
	f.Var((*stringSlice)(p), name, usage)
}

type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}

// ParseObject parses a JSON object flag value. An empty string yields nil.
func ParseObject(name, value string) (map[string]any, error) {
	if value == "" {
		return nil, nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(value), &obj); err != nil {
		return nil, fmt.Errorf("-%s must be a JSON object: %w", name, err)
	}
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, nil
}

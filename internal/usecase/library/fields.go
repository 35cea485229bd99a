package library

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

type fieldKind int

const (
	textField fieldKind = iota
	numberField
)

type allowedField struct {
	name string
	kind fieldKind
}

// lookupField finds key in fields ignoring case. An exact key wins, otherwise
// the first case-insensitive match in byte order.
func lookupField(fields map[string]any, key string) (any, bool) {
	if v, ok := fields[key]; ok {
		return v, true
	}

	keys := lo.Keys(fields)
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return fields[k], true
		}
	}
	return nil, false
}

func stringField(fields map[string]any, key string) string {
	v, ok := lookupField(fields, key)
	if !ok || v == nil {
		return ""
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// intField reports whether key holds a whole number, either as a JSON number
// or as a decimal string.
func intField(fields map[string]any, key string) (int, bool) {
	v, ok := lookupField(fields, key)
	if !ok || v == nil {
		return 0, false
	}

	switch t := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	case float64:
		if t != math.Trunc(t) || t < math.MinInt || t >= math.MaxInt {
			return 0, false
		}
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		if err != nil || n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case bool:
		return 0, false
	default:
		n, err := cast.ToIntE(v)
		return n, err == nil
	}
}

func hasField(fields map[string]any, key string) bool {
	v, ok := lookupField(fields, key)
	return ok && v != nil && strings.TrimSpace(cast.ToString(v)) != ""
}

// titleCase lowercases s and upper-cases the first letter of every
// whitespace separated word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsSpace(r):
			start = true
		case start:
			r = unicode.ToUpper(r)
			start = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// buildUpdate keeps only the allowed fields. Blank text and non-numeric
// numbers are dropped.
func buildUpdate(raw map[string]any, allowed []allowedField) map[string]any {
	updates := make(map[string]any, len(allowed))

	for _, f := range allowed {
		switch f.kind {
		case textField:
			if s := stringField(raw, f.name); s != "" {
				updates[f.name] = titleCase(s)
			}
		case numberField:
			if n, ok := intField(raw, f.name); ok {
				updates[f.name] = n
			}
		}
	}

	return updates
}

func fieldNames(allowed []allowedField) string {
	return strings.Join(lo.Map(allowed, func(f allowedField, _ int) string { return f.name }), ", ")
}

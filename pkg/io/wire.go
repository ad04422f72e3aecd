package io

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// DecodeError reports a document that is syntactically valid but does not
// describe a tree, spec or update batch. Location is a dotted path into the
// document, such as "updates[1].spec.first"; it is empty for syntax errors.
type DecodeError struct {
	Location string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Location, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func invalid(loc, format string, args ...any) error {
	return &DecodeError{Location: loc, Err: fmt.Errorf(format, args...)}
}

func at(loc, key string) string {
	if loc == "" {
		return key
	}
	return loc + "." + key
}

const setKey = "$set"

func nodeToWire(n mosaic.Node) any {
	switch n := n.(type) {
	case mosaic.Leaf:
		return string(n)
	case mosaic.Parent:
		m := map[string]any{
			"direction": string(n.Direction),
			"first":     nodeToWire(n.First),
			"second":    nodeToWire(n.Second),
		}
		if n.SplitPercentage != nil {
			m["splitPercentage"] = *n.SplitPercentage
		}
		return m
	}
	return nil
}

func nodeFromWire(v any, loc string) (mosaic.Node, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return mosaic.Leaf(v), nil
	case map[string]any:
		return parentFromWire(v, loc)
	}
	if key, ok := numberString(v); ok {
		return mosaic.Leaf(key), nil
	}
	return nil, invalid(loc, "expected a leaf or a parent, got %T", v)
}

func parentFromWire(m map[string]any, loc string) (mosaic.Node, error) {
	raw, ok := m["direction"].(string)
	if !ok {
		return nil, invalid(at(loc, "direction"), "missing or non-string direction")
	}
	direction, err := mosaic.ParseDirection(raw)
	if err != nil {
		return nil, &DecodeError{Location: at(loc, "direction"), Err: err}
	}
	p := mosaic.Parent{Direction: direction}

	for _, b := range []mosaic.Branch{mosaic.First, mosaic.Second} {
		v, ok := m[string(b)]
		if !ok || v == nil {
			return nil, invalid(at(loc, string(b)), "missing %s child", b)
		}
		child, err := nodeFromWire(v, at(loc, string(b)))
		if err != nil {
			return nil, err
		}
		if b == mosaic.First {
			p.First = child
		} else {
			p.Second = child
		}
	}

	if v, ok := m["splitPercentage"]; ok && v != nil {
		pct, err := percentageFromWire(v, at(loc, "splitPercentage"))
		if err != nil {
			return nil, err
		}
		p.SplitPercentage = mosaic.Percent(pct)
	}
	return p, nil
}

func percentageFromWire(v any, loc string) (float64, error) {
	pct, ok := toFloat(v)
	if !ok {
		return 0, invalid(loc, "expected a number, got %T", v)
	}
	if pct < 0 || pct > 100 {
		return 0, invalid(loc, "percentage %v outside [0, 100]", pct)
	}
	return pct, nil
}

// numberString stringifies the numeric types produced by the JSON, YAML and
// TOML decoders.
func numberString(v any) (string, bool) {
	switch v := v.(type) {
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	}
	return "", false
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func specToWire(s mosaic.Spec) map[string]any {
	m := map[string]any{}
	switch s := s.(type) {
	case mosaic.Replace:
		m[setKey] = nodeToWire(s.Node)
	case mosaic.Merge:
		if s.Direction != nil {
			m["direction"] = map[string]any{setKey: string(*s.Direction)}
		}
		if s.SplitPercentage != nil {
			m["splitPercentage"] = map[string]any{setKey: *s.SplitPercentage}
		}
		if s.First != nil {
			m["first"] = specToWire(s.First)
		}
		if s.Second != nil {
			m["second"] = specToWire(s.Second)
		}
	}
	return m
}

func specFromWire(v any, loc string) (mosaic.Spec, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalid(loc, "spec must be an object, got %T", v)
	}
	if set, ok := m[setKey]; ok {
		if len(m) != 1 {
			return nil, invalid(loc, "%s cannot be combined with other keys", setKey)
		}
		node, err := nodeFromWire(set, at(loc, setKey))
		if err != nil {
			return nil, err
		}
		return mosaic.Replace{Node: node}, nil
	}

	var merge mosaic.Merge
	for _, key := range slices.Sorted(maps.Keys(m)) {
		val := m[key]
		switch key {
		case "direction":
			raw, err := setValue(val, at(loc, key))
			if err != nil {
				return nil, err
			}
			s, ok := raw.(string)
			if !ok {
				return nil, invalid(at(loc, key), "direction must be a string, got %T", raw)
			}
			d, err := mosaic.ParseDirection(s)
			if err != nil {
				return nil, &DecodeError{Location: at(loc, key), Err: err}
			}
			merge.Direction = &d
		case "splitPercentage":
			raw, err := setValue(val, at(loc, key))
			if err != nil {
				return nil, err
			}
			pct, err := percentageFromWire(raw, at(loc, key))
			if err != nil {
				return nil, err
			}
			merge.SplitPercentage = mosaic.Percent(pct)
		case "first", "second":
			sub, err := specFromWire(val, at(loc, key))
			if err != nil {
				return nil, err
			}
			if key == "first" {
				merge.First = sub
			} else {
				merge.Second = sub
			}
		default:
			return nil, invalid(at(loc, key), "unknown spec key")
		}
	}
	return merge, nil
}

func setValue(v any, loc string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, invalid(loc, "expected {%q: value}", setKey)
	}
	val, ok := m[setKey]
	if !ok {
		return nil, invalid(loc, "expected {%q: value}", setKey)
	}
	return val, nil
}

func pathToWire(p mosaic.Path) []string {
	out := make([]string, len(p))
	for i, b := range p {
		out[i] = string(b)
	}
	return out
}

func pathFromWire(v any, loc string) (mosaic.Path, error) {
	switch v := v.(type) {
	case nil:
		return mosaic.Path{}, nil
	case string:
		p, err := mosaic.ParsePath(v)
		if err != nil {
			return nil, &DecodeError{Location: loc, Err: err}
		}
		return p, nil
	case []any:
		p := make(mosaic.Path, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalid(fmt.Sprintf("%s[%d]", loc, i), "branch must be a string, got %T", item)
			}
			b := mosaic.Branch(s)
			if !b.Valid() {
				return nil, &DecodeError{Location: fmt.Sprintf("%s[%d]", loc, i), Err: &mosaic.InvalidBranchError{Branch: b}}
			}
			p = append(p, b)
		}
		return p, nil
	}
	return nil, invalid(loc, "path must be a list or a dotted string, got %T", v)
}

func updateToWire(u mosaic.Update) map[string]any {
	return map[string]any{
		"path": pathToWire(u.Path),
		"spec": specToWire(u.Spec),
	}
}

func updatesToWire(updates []mosaic.Update) []map[string]any {
	out := make([]map[string]any, len(updates))
	for i, u := range updates {
		out[i] = updateToWire(u)
	}
	return out
}

func updatesFromWire(v any, loc string) ([]mosaic.Update, error) {
	var items []map[string]any
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		inner, ok := v["updates"]
		if !ok {
			return nil, invalid(loc, "expected a list of updates or an object with an updates key")
		}
		return updatesFromWire(inner, at(loc, "updates"))
	case []map[string]any:
		items = v
	case []any:
		items = make([]map[string]any, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, invalid(fmt.Sprintf("%s[%d]", loc, i), "update must be an object, got %T", item)
			}
			items[i] = m
		}
	default:
		return nil, invalid(loc, "expected a list of updates, got %T", v)
	}

	updates := make([]mosaic.Update, len(items))
	for i, item := range items {
		itemLoc := fmt.Sprintf("%s[%d]", loc, i)
		if loc == "" {
			itemLoc = fmt.Sprintf("[%d]", i)
		}
		path, err := pathFromWire(item["path"], at(itemLoc, "path"))
		if err != nil {
			return nil, err
		}
		raw, ok := item["spec"]
		if !ok {
			return nil, invalid(at(itemLoc, "spec"), "missing spec")
		}
		spec, err := specFromWire(raw, at(itemLoc, "spec"))
		if err != nil {
			return nil, err
		}
		updates[i] = mosaic.Update{Path: path, Spec: spec}
	}
	return updates, nil
}

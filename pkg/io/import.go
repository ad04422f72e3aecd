package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// decodeDocument parses r into the generic values shared by all formats:
// strings, numbers, []any and map[string]any.
func decodeDocument(r io.Reader, f Format) (any, error) {
	var doc any
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, &DecodeError{Err: err}
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, &DecodeError{Err: err}
		}
	case FormatTOML:
		var m map[string]any
		if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, &DecodeError{Err: err}
		}
		doc = m
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
	return doc, nil
}

// ReadTree decodes a split tree in format f from r.
//
// A null document (or a TOML document without a layout key) decodes to the
// empty tree. Structural problems are reported as [*DecodeError]. ReadTree
// does not close r.
func ReadTree(r io.Reader, f Format) (mosaic.Node, error) {
	doc, err := decodeDocument(r, f)
	if err != nil {
		return nil, err
	}
	loc := ""
	if f == FormatTOML {
		m, _ := doc.(map[string]any)
		v, ok := m["layout"]
		if !ok {
			return nil, nil
		}
		doc, loc = v, "layout"
	}
	return nodeFromWire(doc, loc)
}

// ImportTree reads the tree stored at path, choosing the format from the
// file extension.
func ImportTree(path string) (mosaic.Node, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return ReadTree(file, f)
}

// ReadUpdates decodes an update batch in format f from r.
//
// The document is either a list of updates or an object holding the list
// under "updates"; TOML documents always use the latter. Paths may be
// branch lists or dotted strings.
func ReadUpdates(r io.Reader, f Format) ([]mosaic.Update, error) {
	doc, err := decodeDocument(r, f)
	if err != nil {
		return nil, err
	}
	if m, ok := doc.(map[string]any); ok && f == FormatTOML && len(m) == 0 {
		return nil, nil
	}
	return updatesFromWire(doc, "")
}

// ImportUpdates reads the update batch stored at path, choosing the format
// from the file extension.
func ImportUpdates(path string) ([]mosaic.Update, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return ReadUpdates(file, f)
}

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

// ErrTOMLEmptyTree is returned when an empty replacement has to be written
// as TOML, which has no null value.
var ErrTOMLEmptyTree = errors.New("toml cannot represent an empty tree inside an update")

func encodeDocument(w io.Writer, doc any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
	return nil
}

// WriteTree encodes tree in format f and writes it to w.
// The output can be read back with [ReadTree].
func WriteTree(w io.Writer, tree mosaic.Node, f Format) error {
	doc := nodeToWire(tree)
	if f == FormatTOML {
		m := map[string]any{}
		if tree != nil {
			m["layout"] = doc
		}
		doc = m
	}
	return encodeDocument(w, doc, f)
}

// ExportTree writes tree to a file at path in the format implied by its
// extension.
func ExportTree(tree mosaic.Node, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	return WriteTree(file, tree, f)
}

// WriteUpdates encodes updates in format f and writes them to w.
// JSON and YAML produce a bare list; TOML produces an array of tables named
// updates.
func WriteUpdates(w io.Writer, updates []mosaic.Update, f Format) error {
	var doc any = updatesToWire(updates)
	if f == FormatTOML {
		for _, u := range updates {
			if replacesWithEmpty(u.Spec) {
				return ErrTOMLEmptyTree
			}
		}
		doc = map[string]any{"updates": doc}
	}
	return encodeDocument(w, doc, f)
}

// ExportUpdates writes updates to a file at path in the format implied by
// its extension.
func ExportUpdates(updates []mosaic.Update, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	return WriteUpdates(file, updates, f)
}

func replacesWithEmpty(s mosaic.Spec) bool {
	switch s := s.(type) {
	case mosaic.Replace:
		return s.Node == nil
	case mosaic.Merge:
		return replacesWithEmpty(s.First) || replacesWithEmpty(s.Second)
	}
	return false
}

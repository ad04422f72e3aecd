package io

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return v, nil
}

// Tree wraps a node so it can be embedded in JSON documents using the tree
// wire format.
type Tree struct {
	Node mosaic.Node
}

func (t Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeToWire(t.Node))
}

func (t *Tree) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	n, err := nodeFromWire(v, "")
	if err != nil {
		return err
	}
	t.Node = n
	return nil
}

// Updates wraps an update batch for embedding in JSON documents.
type Updates []mosaic.Update

func (u Updates) MarshalJSON() ([]byte, error) {
	return json.Marshal(updatesToWire(u))
}

func (u *Updates) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	updates, err := updatesFromWire(v, "")
	if err != nil {
		return err
	}
	*u = updates
	return nil
}

// Path decodes from either a branch list or the dotted string form and
// encodes as a branch list.
type Path mosaic.Path

func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(pathToWire(mosaic.Path(p)))
}

func (p *Path) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	path, err := pathFromWire(v, "")
	if err != nil {
		return err
	}
	*p = Path(path)
	return nil
}

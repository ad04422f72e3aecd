package api

import (
	"net/http"

	"github.com/matzehuels/mosaic/pkg/buildinfo"
	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/ids"
	pkgio "github.com/matzehuels/mosaic/pkg/io"
	"github.com/matzehuels/mosaic/pkg/mosaic"
)

type (
	buildRequest struct {
		Leaves    []string `json:"leaves"`
		Count     int      `json:"count"`
		Direction string   `json:"direction"`
	}
	treeRequest struct {
		Tree pkgio.Tree `json:"tree"`
	}
	cornerRequest struct {
		Tree   pkgio.Tree `json:"tree"`
		Corner string     `json:"corner"`
	}
	resolveRequest struct {
		Tree pkgio.Tree `json:"tree"`
		Path pkgio.Path `json:"path"`
	}
	applyRequest struct {
		Tree    pkgio.Tree    `json:"tree"`
		Updates pkgio.Updates `json:"updates"`
	}
	insertRequest struct {
		Tree  pkgio.Tree `json:"tree"`
		Item  string     `json:"item"`
		Apply bool       `json:"apply"`
	}
	pathOpRequest struct {
		Tree  pkgio.Tree `json:"tree"`
		Path  pkgio.Path `json:"path"`
		Apply bool       `json:"apply"`
	}
	expandRequest struct {
		Tree       pkgio.Tree `json:"tree"`
		Path       pkgio.Path `json:"path"`
		Percentage *float64   `json:"percentage"`
		Apply      bool       `json:"apply"`
	}
	dragRequest struct {
		Tree        pkgio.Tree `json:"tree"`
		Source      pkgio.Path `json:"source"`
		Destination pkgio.Path `json:"destination"`
		Position    string     `json:"position"`
		Apply       bool       `json:"apply"`
	}

	healthResponse struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}
	treeResponse struct {
		Tree pkgio.Tree `json:"tree"`
	}
	leavesResponse struct {
		Leaves []mosaic.Leaf `json:"leaves"`
	}
	pathResponse struct {
		Path pkgio.Path `json:"path"`
	}
	nodeResponse struct {
		Node pkgio.Tree `json:"node"`
	}
	boxesResponse struct {
		Boxes []mosaic.LeafBox `json:"boxes"`
	}
	opResponse struct {
		Updates pkgio.Updates `json:"updates"`
		Tree    *pkgio.Tree   `json:"tree,omitempty"`
	}
)

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (h *handlers) build(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	direction := h.direction
	if req.Direction != "" {
		d, err := mosaic.ParseDirection(req.Direction)
		if err != nil {
			h.writeError(w, r, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "invalid direction"))
			return
		}
		direction = d
	}

	var leaves []mosaic.Leaf
	switch {
	case len(req.Leaves) > 0:
		leaves = make([]mosaic.Leaf, len(req.Leaves))
		for i, key := range req.Leaves {
			if err := pkgerrors.ValidateLeafKey(key); err != nil {
				h.writeError(w, r, err)
				return
			}
			leaves[i] = mosaic.Leaf(key)
		}
	case req.Count > 0:
		if req.Count > maxGeneratedLeaves {
			h.writeError(w, r, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "count exceeds %d", maxGeneratedLeaves))
			return
		}
		leaves = ids.NewLeaves(req.Count)
	}

	writeJSON(w, http.StatusOK, treeResponse{Tree: pkgio.Tree{Node: mosaic.BuildBalanced(leaves, direction)}})
}

// maxGeneratedLeaves bounds /v1/build requests that ask for generated keys.
const maxGeneratedLeaves = 4096

func (h *handlers) leaves(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	out := []mosaic.Leaf{}
	for leaf := range mosaic.Leaves(req.Tree.Node) {
		out = append(out, leaf)
	}
	writeJSON(w, http.StatusOK, leavesResponse{Leaves: out})
}

func (h *handlers) corner(w http.ResponseWriter, r *http.Request) {
	var req cornerRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	corner, ok := mosaic.ParseCorner(req.Corner)
	if !ok {
		h.writeError(w, r, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "invalid corner %q", req.Corner))
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{Path: pkgio.Path(mosaic.PathToCorner(req.Tree.Node, corner))})
}

func (h *handlers) resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	node, err := mosaic.ResolveStrict(req.Tree.Node, mosaic.Path(req.Path))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nodeResponse{Node: pkgio.Tree{Node: node}})
}

func (h *handlers) boxes(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	boxes := mosaic.Boxes(req.Tree.Node)
	if boxes == nil {
		boxes = []mosaic.LeafBox{}
	}
	writeJSON(w, http.StatusOK, boxesResponse{Boxes: boxes})
}

func (h *handlers) apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	next, err := mosaic.ApplyUpdates(req.Tree.Node, req.Updates)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Debug("applied updates", "count", len(req.Updates))
	writeJSON(w, http.StatusOK, treeResponse{Tree: pkgio.Tree{Node: next}})
}

func (h *handlers) insert(w http.ResponseWriter, r *http.Request) {
	var req insertRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	item := ids.NewLeaf()
	if req.Item != "" {
		if err := pkgerrors.ValidateLeafKey(req.Item); err != nil {
			h.writeError(w, r, err)
			return
		}
		item = mosaic.Leaf(req.Item)
	}
	u, err := mosaic.InsertUpdate(req.Tree.Node, item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondOp(w, r, req.Tree.Node, []mosaic.Update{u}, req.Apply)
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	var req pathOpRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := mosaic.RemoveUpdate(req.Tree.Node, mosaic.Path(req.Path))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondOp(w, r, req.Tree.Node, []mosaic.Update{u}, req.Apply)
}

func (h *handlers) hide(w http.ResponseWriter, r *http.Request) {
	var req pathOpRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := mosaic.HideUpdate(mosaic.Path(req.Path))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondOp(w, r, req.Tree.Node, []mosaic.Update{u}, req.Apply)
}

func (h *handlers) expand(w http.ResponseWriter, r *http.Request) {
	var req expandRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	pct := h.expandPercentage
	if req.Percentage != nil {
		pct = *req.Percentage
	}
	if err := pkgerrors.ValidatePercentage(pct); err != nil {
		h.writeError(w, r, err)
		return
	}
	u := mosaic.ExpandUpdate(mosaic.Path(req.Path), pct)
	h.respondOp(w, r, req.Tree.Node, []mosaic.Update{u}, req.Apply)
}

func (h *handlers) drag(w http.ResponseWriter, r *http.Request) {
	var req dragRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	position, err := mosaic.ParsePosition(req.Position)
	if err != nil {
		h.writeError(w, r, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "invalid position"))
		return
	}
	updates, err := mosaic.DragToUpdates(req.Tree.Node, mosaic.Path(req.Source), mosaic.Path(req.Destination), position)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondOp(w, r, req.Tree.Node, updates, req.Apply)
}

func (h *handlers) respondOp(w http.ResponseWriter, r *http.Request, tree mosaic.Node, updates []mosaic.Update, apply bool) {
	resp := opResponse{Updates: updates}
	if apply {
		next, err := mosaic.ApplyUpdates(tree, updates)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		resp.Tree = &pkgio.Tree{Node: next}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Package api exposes the layout transforms as a stateless JSON service.
//
// Every request carries the tree it operates on; the service holds no
// layouts between requests. Trees, paths and updates use the wire format of
// package io.
//
// # Endpoints
//
//	GET  /healthz          liveness and build information
//	POST /v1/build         {"leaves": [...], "count": n, "direction": "row"}  → {"tree"}
//	POST /v1/leaves        {"tree"}                                          → {"leaves"}
//	POST /v1/corner        {"tree", "corner": "top-right"}                   → {"path"}
//	POST /v1/resolve       {"tree", "path"}                                  → {"node"}
//	POST /v1/boxes         {"tree"}                                          → {"boxes"}
//	POST /v1/apply         {"tree", "updates"}                               → {"tree"}
//	POST /v1/ops/insert    {"tree", "item", "apply"}                         → {"updates", "tree"?}
//	POST /v1/ops/remove    {"tree", "path", "apply"}                         → {"updates", "tree"?}
//	POST /v1/ops/hide      {"tree", "path", "apply"}                         → {"updates", "tree"?}
//	POST /v1/ops/expand    {"tree", "path", "percentage", "apply"}           → {"updates", "tree"?}
//	POST /v1/ops/drag      {"tree", "source", "destination", "position", "apply"} → {"updates", "tree"?}
//
// Operation endpoints return the updates they computed; with "apply": true
// the response also carries the resulting tree.
//
// # Errors
//
// Failures are reported as {"code", "message", "detail"} using the codes of
// package errors, with the matching HTTP status from [errors.HTTPStatus].
//
// [errors.HTTPStatus]: github.com/matzehuels/mosaic/pkg/errors.HTTPStatus
package api

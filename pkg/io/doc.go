// Package io reads and writes split trees and update batches.
//
// # Overview
//
// Layouts and update batches travel between the CLI, the HTTP service and
// files on disk in one wire format, available as JSON, YAML or TOML. The
// format is designed for:
//
//   - Hand-written layout files that the mosaic CLI can transform
//   - Front ends that already speak the immutability-helper style update
//     objects ({"$set": ...})
//   - Round-trip preservation: read, transform, write, and re-read identically
//
// # Tree Format
//
// A leaf is a string. A parent is an object with a direction, two children and
// an optional split percentage:
//
//	{
//	  "direction": "row",
//	  "first": "editor",
//	  "second": {
//	    "direction": "column",
//	    "first": "terminal",
//	    "second": "preview",
//	    "splitPercentage": 30
//	  }
//	}
//
// Numeric leaves are accepted on input and stringified. An empty tree is null
// in JSON and YAML, and an absent "layout" key in TOML, whose documents
// always wrap the tree:
//
//	[layout]
//	direction = "row"
//	first = "editor"
//	second = "preview"
//
// # Update Format
//
// A batch is a list of {"path", "spec"} objects. The path is a list of
// branches (or the dotted string form understood by [mosaic.ParsePath]).
// A spec is either a replacement or a merge:
//
//	[
//	  {"path": ["second"], "spec": {"$set": "terminal"}},
//	  {"path": [], "spec": {
//	    "splitPercentage": {"$set": 70},
//	    "first": {"direction": {"$set": "column"}}
//	  }}
//	]
//
// TOML batches are an array of tables named updates:
//
//	[[updates]]
//	path = ["second"]
//	spec = { "$set" = "terminal" }
//
// # Validation
//
// Decoding rejects unknown directions, split percentages outside [0, 100],
// parents with a missing child and malformed specs. Such failures are
// reported as [*DecodeError], which records where in the document the
// problem was found.
//
// # Import and Export
//
// [ReadTree] and [WriteTree] work on any reader or writer in an explicit
// [Format]. [ImportTree] and [ExportTree] pick the format from the file
// extension with [FormatFromPath]. [ReadUpdates], [WriteUpdates],
// [ImportUpdates] and [ExportUpdates] do the same for update batches.
//
// [Tree] and [Updates] implement json.Marshaler and json.Unmarshaler so the
// wire format can be embedded in larger JSON documents such as HTTP request
// bodies.
package io

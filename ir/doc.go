// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A JSON value is represented as a tree of Node. All documents, whether
// parsed from text or created programmatically, are ir.Node trees.
//
// # Node Structure
//
// A Node represents a single JSON value. The Type field indicates which
// of the six JSON kinds the node holds:
//
//   - NullType: null
//   - BoolType: boolean (true/false)
//   - NumberType: number (float64; all JSON numbers, integer or decimal)
//   - StringType: string (UTF-8)
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs
//
// The IR works as a recursive tagged union, where values are placed in
// fields depending on the node type. Exactly one kind is active at a time.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Keys are unique and kept
// in insertion order; setting an existing key overwrites its value in
// place. For ArrayType nodes Fields is nil and Values holds the elements
// in order.
//
// Numbers are stored as float64. JSON integers outside the exactly
// representable range lose precision; this is a documented property of
// the representation, not an error.
//
// # Access
//
// Typed accessors (AsBool, AsNumber, AsString, AsArray, AsObject) fail
// with ErrTypeMismatch when the node holds a different kind; there is no
// coercion. Array access by position (Index, SetIndex) is bounds-checked.
// Object access comes in two deliberately asymmetric forms: Get never
// mutates and fails with ErrKeyNotFound for an absent key, while At
// inserts a null entry for an absent key and returns it, so a value can
// be created and assigned in one step.
//
// # Ownership
//
// A node exclusively owns its children; the tree has no back-references.
// Clone performs a deep copy, so mutating a clone never affects the
// original. Nodes are not safe for concurrent mutation; callers sharing
// a tree across goroutines must synchronize or clone per goroutine.
//
// # Related Packages
//
//   - github.com/signadot/jsontree/parse - Parses text into IR nodes
//   - github.com/signadot/jsontree/encode - Encodes IR nodes to text
package ir

// Package gen compiles a schema held by a schema.Store into the SBE XML
// wire-schema artifact.
//
// A Generator owns one namespaced element tree: the sbe:messageSchema root
// with its header attributes and a single types container. Each Generate*
// call appends one element (types go into the container, messages go under
// the root) and returns the serialized fragment of that element. With
// AutoFlush set, the whole tree is rewritten to disk after every append;
// otherwise the caller decides when to Flush.
//
// Emission follows fixed conventions:
//   - number types carry the null/min/max literals of their primitive
//   - every message starts with the FixHeader field (id 20007)
//   - group fields never carry a presence attribute
//
// The XML side performs no duplicate detection. Compile walks a whole store
// once and is the usual entry point.
package gen

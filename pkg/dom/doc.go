// Package dom provides the live document tree that Topiary reconciles
// against, built on golang.org/x/net/html.
//
// A Document owns an html.Node tree and hands out canonical *Node handles:
// for any underlying node there is exactly one handle per document, so
// handle equality is node identity. Handles are non-owning: node lifetime
// is governed by the tree itself, and a detached node can be re-inserted
// through the same handle.
//
// # Mutations
//
// Every observable write (attribute set/remove, class property, style text,
// text data, child insertion/removal) emits a Mutation to observers
// registered with Document.Observe. Read paths never emit. This is the
// hook the reconciler's no-op guarantees are verified against: rendering
// an already-converged tree must emit nothing.
//
// # Concurrency
//
// A Document and its handles are not safe for concurrent use. Render
// passes are synchronous and assume exclusive access to the subtree they
// mutate.
package dom

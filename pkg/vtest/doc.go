// Package vtest provides testing helpers for Topiary render code.
//
// The package reduces boilerplate in reconciliation tests: a one-call
// document fixture, a mutation Recorder for write-trap assertions, and
// small Expect helpers over live nodes.
//
// # Quick Start
//
//	func TestMenu_SecondRenderIsQuiet(t *testing.T) {
//	    doc, container := vtest.NewFixture()
//	    vdom.Render(container, menu())
//
//	    rec := vtest.NewRecorder().AttachTo(doc)
//	    defer rec.Detach()
//	    vdom.Render(container, menu())
//	    vtest.ExpectNoMutations(t, rec)
//	}
//
// The Recorder captures every dom.Mutation the document emits while
// attached, so tests can assert exact write behavior rather than just
// final tree shape.
package vtest

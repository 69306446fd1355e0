// Package el provides the tree-building DSL for Topiary.
//
// It re-exports the element constructors, attribute helpers, and VDOM
// utilities from github.com/topiary-ui/topiary/pkg/vdom.
//
// Typical usage:
//
//	import (
//	    "github.com/topiary-ui/topiary"
//	    . "github.com/topiary-ui/topiary/el"
//	)
//
// This keeps the DSL in a dedicated package while the reconciliation
// APIs live at the module root.
package el

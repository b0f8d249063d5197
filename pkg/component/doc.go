// Package component runs component instances over isolated rendering
// boundaries.
//
// A [Definition] pairs a prop schema with a constructor for per-instance
// [Component] values. [New] creates the host element, binds its props view,
// attaches a boundary and renders once. Every later change to an observed
// attribute replaces the boundary's content with a fresh render result;
// there is no diffing, and the component's style block is injected only on
// the first render.
//
// Definitions are registered by stable name in a [Registry], which the
// declarative factory consults when a definition is used as a tag.
package component

// Package nbt provides an in-memory tagged value tree: scalars, numeric
// arrays, ordered lists and named compounds, identified by their NBT tag ids.
//
// Trees are built by callers (or by the snbt and document packages) and are
// only read by the path engine. Nothing in this package is safe for
// concurrent mutation; concurrent reads of an unchanged tree are fine.
package nbt

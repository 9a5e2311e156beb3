// Package nbtpath locates values inside a tag tree with path expressions.
//
// A path is a sequence of steps, separated by '.' unless the next step
// starts with '[' or '{':
//
//	name            child of a compound
//	"quoted name"   same, with escapes
//	name{k:v}       child of a compound that matches the template
//	{k:v}           the current tag, if it matches the template
//	[]              every element of a list or array
//	[3] / [-1]      one element of a list or array; negative counts from the end
//	[{k:v}]         every element of a list that matches the template
//
// A template matches a tag when every key of a template compound is present
// and matches, when every element of a template list matches at least one
// element of the candidate list, and otherwise by value equality.
//
// Parsing stops at the end of input or at the first space. Paths are
// read-only: evaluation never modifies the tree.
package nbtpath

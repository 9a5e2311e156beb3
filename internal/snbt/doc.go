// Package snbt reads and writes the stringified form of tag trees:
//
//	{name:"Steve",pos:[1.0d,64.0d,-3.5d],inv:[{id:"stone",n:3b}],ids:[I;1,2]}
//
// The parser can also start in the middle of a larger input, which the path
// engine uses for templates embedded in path expressions.
package snbt

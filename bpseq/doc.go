// Package bpseq reads and writes the bpseq secondary-structure format,
// the line-oriented reference format the scoring pipeline consumes.
//
// 🚀 Format:
//
//	One data line per position, three whitespace-separated columns:
//
//	    <pos> <base> <partner>
//
//	Positions and partners are 1-indexed; partner 0 means unpaired.
//	A paired line must be reciprocated: if line i names partner j,
//	line j must name partner i.
//
// Example (a 9-base hairpin with two stem pairs):
//
//	1 G 9
//	2 C 8
//	3 G 0
//	4 A 0
//	5 A 0
//	6 A 0
//	7 C 0
//	8 G 2
//	9 C 1
//
// Parse returns the sequence and a 0-indexed PairSet satisfying the
// matching invariant by construction; Encode is its deterministic
// inverse, so Parse(Encode(seq, ps)) round-trips exactly.
//
// Blank lines are ignored. Malformed fields yield ErrBadLine; duplicate
// or out-of-range positions and non-reciprocal partners yield
// ErrInconsistent. File handling belongs to the caller - this package
// speaks io.Reader and strings only.
package bpseq

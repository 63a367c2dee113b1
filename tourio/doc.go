// Package tourio reads city lists and writes tour files.
//
// Input: whitespace-separated integer triples "id x y", any layout, read until
// end of stream. Each token is read as an integer prefix, so "12abc" still
// yields 12. Reading stops silently where no integer starts and drops a short
// trailing triple. When an identifier repeats, the
// first occurrence wins.
//
// Output: the tour length on the first line, then one city identifier per
// line in visit order.
//
//	14
//	0
//	1
//	2
//	3
package tourio

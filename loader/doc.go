// Package loader reads delimited edge lists into a core.Graph and writes
// graphs back out in the same format.
//
// Input format
//
// One record per line, three fields: endpoint A, endpoint B, weight.
//
//	# comment lines are skipped
//	A,B,5
//	B,C,5
//	A,C,11
//
// Weights are parsed as float64 (strconv.ParseFloat). Records are applied to
// the graph in file order, so a repeated pair keeps the weight of its last
// record. With WithIsolated, a single-field record registers a node without
// edges.
//
// Errors
//
// Parsing fails fast. The first bad record stops the read and no graph is
// built. The error is a *ParseError carrying the 1-based line number; it
// unwraps to one of:
//
//	ErrMalformedRecord – wrong field count, empty label, or broken quoting.
//	ErrBadWeight       – weight does not parse as a float, or is NaN or ±Inf.
//
// Option mistakes (comma equal to comment, line breaks as delimiters) are
// reported as ErrOptionViolation before any input is read.
//
// Output
//
// Write emits one record per distinct edge with its current weight, then one
// single-field record per node without edges (WithIsolated must be set).
package loader

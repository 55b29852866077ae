// Package measure builds the initial pairwise matrix handed to the
// clustering engine.
//
// Every measure implements cluster.Measure: CreateMatrix(ctx, items) returns
// a symmetric n×n *matrix.Dense and Kind() tells whether its values are
// distances or similarities.
//
// Measures:
//
//	Func[C]    – any func(a, b C) float64, filled in parallel row bands.
//	Euclidean  – L2 distance between equal-length vectors.
//	Manhattan  – L1 distance between equal-length vectors.
//	Cosine     – cosine similarity (rows L2-normalised, then dot products).
//	Pearson    – Pearson correlation (rows centred, normalised, dotted).
//	DTW        – dynamic time warping distance between series.
//
// The diagonal is 0 for distances and Fn(a, a) for similarities.
// Filling honours ctx cancellation between rows.
package measure

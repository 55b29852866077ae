// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// series. It backs the time-series measure used to cluster series of
// unequal length or phase.
//
// DTW aligns two sequences by warping the time axis so that the summed
// point-wise cost |a[i]-b[j]| along the alignment is minimal.
//
// Features:
//   - Distance: two rolling rows, O(min(N,M)) memory.
//   - Path: full matrix with backtrace of the optimal warping path.
//   - Sakoe-Chiba window (|i-j| <= Window) to bound the search.
//   - SlopePenalty added to every non-diagonal step.
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	d, err := dtw.Distance(a, b, opts)
//
// Complexity:
//
//   - Time:   O(N·M), or O(N·W) with a window.
//   - Memory: O(min(N,M)) for Distance, O(N·M) for Path.
package dtw

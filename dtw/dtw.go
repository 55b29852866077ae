package dtw

import "math"

// Distance returns the DTW distance between a and b.
//
// Recurrence (1-based, D[0][0] = 0, D[i][0] = D[0][j] = +Inf):
//
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// Cells outside the window are +Inf. Only two rows over the shorter input
// are kept.
// Complexity: O(N·M) time, O(min(N,M)) memory.
func Distance(a, b []float64, opts Options) (float64, error) {
	if err := validate(a, b, opts); err != nil {
		return 0, err
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inWindow(i, j, opts.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) +
				min(prev[j-1], prev[j]+opts.SlopePenalty, curr[j-1]+opts.SlopePenalty)
		}
		prev, curr = curr, prev
		prev[0] = inf
	}

	return prev[m], nil
}

// Path returns the DTW distance together with the optimal warping path from
// (0, 0) to (len(a)-1, len(b)-1). On ties the diagonal step is preferred,
// then the step in a, then the step in b. When no alignment exists within
// the window the distance is +Inf and the path is nil.
// Complexity: O(N·M) time and memory.
func Path(a, b []float64, opts Options) (float64, []Coord, error) {
	if err := validate(a, b, opts); err != nil {
		return 0, nil, err
	}
	n, m := len(a), len(b)
	inf := math.Inf(1)
	p := opts.SlopePenalty

	w := m + 1
	dp := make([]float64, (n+1)*w)
	for j := 1; j <= m; j++ {
		dp[j] = inf
	}
	for i := 1; i <= n; i++ {
		dp[i*w] = inf
		for j := 1; j <= m; j++ {
			if !inWindow(i, j, opts.Window) {
				dp[i*w+j] = inf
				continue
			}
			dp[i*w+j] = math.Abs(a[i-1]-b[j-1]) +
				min(dp[(i-1)*w+j-1], dp[(i-1)*w+j]+p, dp[i*w+j-1]+p)
		}
	}
	dist := dp[n*w+m]
	if math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag, up, left := dp[(i-1)*w+j-1], dp[(i-1)*w+j]+p, dp[i*w+j-1]+p
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return dist, path, nil
}

func validate(a, b []float64, opts Options) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptySequence
	}
	if opts.Window < -1 {
		return ErrBadWindow
	}
	if opts.SlopePenalty < 0 || math.IsNaN(opts.SlopePenalty) {
		return ErrBadPenalty
	}

	return nil
}

// inWindow reports whether cell (i, j) lies inside the Sakoe-Chiba band.
func inWindow(i, j, window int) bool {
	if window < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= window
}

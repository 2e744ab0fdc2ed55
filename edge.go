package contour

// intersectEdge locates the surface crossing on the edge from v1 to v2
// and returns the crossing point with its oracle normal.
//
// The edge is parameterized as e(α) = v1 + α(v2−v1), α ∈ [0,1], and the
// squared oracle distance is minimized with a derivative-free bounded
// search. This tolerates non-monotonic distance profiles along the edge
// without requiring oracle derivatives.
//
// Two endpoint cases are handled without optimizing:
//   - Distance(v1) == 0: v1 is returned directly, preserving exact hits.
//   - Distance(v2) == 0 (and v1 is not on the surface): ok is false and
//     no sample is produced. In the cyclic edge walk the next edge starts
//     at v2 and supplies the sample, so shared corners never contribute
//     duplicate Hermite entries.
func intersectEdge(o Oracle, m Minimizer, v1, v2 Point) (p, n Point, ok bool) {
	if o.Distance(v1) == 0 {
		return v1, o.Normal(v1), true
	}
	if o.Distance(v2) == 0 {
		return Point{}, Point{}, false
	}

	alpha := m.Minimize(func(a float64) float64 {
		d := o.Distance(v1.Lerp(v2, a))
		return d * d
	}, 0, 1)

	p = v1.Lerp(v2, alpha)
	return p, o.Normal(p), true
}

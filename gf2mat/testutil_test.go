package gf2mat

// oracleMul computes a*b with a naive O(m*k*n) bit-level reference
// routine, independent of everything under test: the M4RM kernel, the
// decomposition schedules and the top-level driver all get checked
// against this rather than against each other.
func oracleMul(a, b *Matrix) *Matrix {
	m, k, n := a.NRows(), a.NCols(), b.NCols()
	out := Zero(m, n)
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			av, _ := a.Get(i, p)
			if !av {
				continue
			}
			for j := 0; j < n; j++ {
				bv, _ := b.Get(p, j)
				if !bv {
					continue
				}
				cur, _ := out.Get(i, j)
				_ = out.Set(i, j, cur != bv)
			}
		}
	}
	return out
}

package linalg

// Mul returns the matrix product a*b. Grounded on the teacher's
// matrix.Mul: validate shapes, allocate once, flat row-major triple loop.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		aBase := i * a.c
		for k := 0; k < a.c; k++ {
			av := a.data[aBase+k]
			if av == 0 {
				continue
			}
			bBase := k * b.c
			resBase := i * res.c
			for j := 0; j < b.c; j++ {
				res.data[resBase+j] += av * b.data[bBase+j]
			}
		}
	}
	return res, nil
}

// Transpose returns the transpose of m.
func Transpose(m *Dense) *Dense {
	res, _ := NewDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}
	return res
}

// Scale returns m scaled by alpha.
func Scale(m *Dense, alpha float64) *Dense {
	res := m.Clone()
	for i := range res.data {
		res.data[i] *= alpha
	}
	return res
}

// Add returns the element-wise sum a+b.
func Add(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	res := a.Clone()
	for i := range res.data {
		res.data[i] += b.data[i]
	}
	return res, nil
}

// MatVec returns m*x for a column vector x of length m.Cols().
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var acc float64
		for j := 0; j < m.c; j++ {
			if x[j] != 0 {
				acc += m.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}
	return y, nil
}

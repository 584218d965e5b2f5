package symbolic

import "errors"

// ErrSingular is returned by Inverse when a symbolic matrix is not
// invertible (every pivot candidate in a column simplifies to the exact zero
// constant or evaluates to zero at every Equal sample point).
var ErrSingular = errors.New("symbolic: singular matrix")

// ErrNotSquare is returned by Inverse when called on a non-square matrix.
var ErrNotSquare = errors.New("symbolic: matrix must be square")

// ErrShapeMismatch is returned by matrix operations given operands of
// incompatible shape.
var ErrShapeMismatch = errors.New("symbolic: shape mismatch")

// Matrix is a dense row-major matrix of symbolic expressions.
type Matrix struct {
	Rows, Cols int
	data       []Expr
}

// NewMatrix allocates a Rows x Cols matrix of zero-valued entries.
func NewMatrix(rows, cols int) Matrix {
	data := make([]Expr, rows*cols)
	for i := range data {
		data[i] = Const(0)
	}
	return Matrix{Rows: rows, Cols: cols, data: data}
}

// FromRows builds a Matrix from a slice of row slices. All rows must have
// equal length.
func FromRows(rows [][]Expr) Matrix {
	m := NewMatrix(len(rows), len(rows[0]))
	for i, r := range rows {
		for j, e := range r {
			m.Set(i, j, e)
		}
	}
	return m
}

// ColumnVector builds an n x 1 matrix from es.
func ColumnVector(es []Expr) Matrix {
	m := NewMatrix(len(es), 1)
	for i, e := range es {
		m.Set(i, 0, e)
	}
	return m
}

// Identity returns the n x n symbolic identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, Const(1))
	}
	return m
}

// At returns entry (i,j).
func (m Matrix) At(i, j int) Expr { return m.data[i*m.Cols+j] }

// Set assigns entry (i,j).
func (m Matrix) Set(i, j int, e Expr) { m.data[i*m.Cols+j] = e }

// Row returns row i as a slice of expressions (a copy).
func (m Matrix) Row(i int) []Expr {
	out := make([]Expr, m.Cols)
	copy(out, m.data[i*m.Cols:(i+1)*m.Cols])
	return out
}

// Col returns column j as a slice of expressions.
func (m Matrix) Col(j int) []Expr {
	out := make([]Expr, m.Rows)
	for i := 0; i < m.Rows; i++ {
		out[i] = m.At(i, j)
	}
	return out
}

// ToVector returns the n x 1 (or 1 x n) matrix's entries as a flat slice.
func (m Matrix) ToVector() []Expr {
	out := make([]Expr, len(m.data))
	copy(out, m.data)
	return out
}

// IsZero reports whether every entry simplifies to the exact constant zero.
func (m Matrix) IsZero() bool {
	for _, e := range m.data {
		s := Simplify(e)
		if c, ok := s.IsConst(); !ok || c != 0 {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy (Expr is an immutable value type, so this is
// a genuine independent copy).
func (m Matrix) Clone() Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.data, m.data)
	return out
}

// MatMul multiplies two matrices.
func MatMul(a, b Matrix) (Matrix, error) {
	if a.Cols != b.Rows {
		return Matrix{}, ErrShapeMismatch
	}
	out := NewMatrix(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			var terms []Expr
			for k := 0; k < a.Cols; k++ {
				terms = append(terms, Mul(a.At(i, k), b.At(k, j)))
			}
			out.Set(i, j, Add(terms...))
		}
	}
	return out, nil
}

// MatAdd adds two equal-shaped matrices.
func MatAdd(a, b Matrix) (Matrix, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return Matrix{}, ErrShapeMismatch
	}
	out := NewMatrix(a.Rows, a.Cols)
	for i := range a.data {
		out.data[i] = Add(a.data[i], b.data[i])
	}
	return out, nil
}

// MatSub subtracts two equal-shaped matrices.
func MatSub(a, b Matrix) (Matrix, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return Matrix{}, ErrShapeMismatch
	}
	out := NewMatrix(a.Rows, a.Cols)
	for i := range a.data {
		out.data[i] = Sub(a.data[i], b.data[i])
	}
	return out, nil
}

// Scale multiplies every entry of m by s.
func (m Matrix) Scale(s Expr) Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, e := range m.data {
		out.data[i] = Mul(s, e)
	}
	return out
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// Map applies f to every entry of m.
func (m Matrix) Map(f func(Expr) Expr) Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, e := range m.data {
		out.data[i] = f(e)
	}
	return out
}

// Simplify simplifies every entry of m.
func (m Matrix) Simplify() Matrix {
	return m.Map(Simplify)
}

// Subst substitutes from -> to in every entry.
func (m Matrix) Subst(from *Symbol, to Expr) Matrix {
	return m.Map(func(e Expr) Expr { return Subst(e, from, to) })
}

// SubstMap applies a vector-to-vector substitution to every entry.
func (m Matrix) SubstMap(sub map[*Symbol]Expr) Matrix {
	return m.Map(func(e Expr) Expr { return SubstMap(e, sub) })
}

// Inverse computes the inverse of a square symbolic matrix by symbolic
// Gauss-Jordan elimination. The pivot for each column is the first candidate
// at or below the diagonal that is not zero; magnitudes are not compared. A
// candidate counts as zero when it simplifies to the exact constant zero or,
// failing that, when Equal finds it zero by numeric sampling (a purely
// symbolic "is this expression the zero polynomial" test is undecidable in
// general). A column with no nonzero candidate is singular.
func Inverse(m Matrix) (Matrix, error) {
	n := m.Rows
	if n != m.Cols {
		return Matrix{}, ErrNotSquare
	}

	aug := make([][]Expr, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]Expr, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = m.At(i, j)
		}
		aug[i][n+i] = Const(1)
		for j := 0; j < n; j++ {
			if j != i {
				aug[i][n+j] = Const(0)
			}
		}
	}

	isZero := func(e Expr) bool {
		s := Simplify(e)
		if c, ok := s.IsConst(); ok {
			return c == 0
		}
		return Equal(s, Const(0))
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !isZero(aug[row][col]) {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return Matrix{}, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for j := 0; j < 2*n; j++ {
			aug[col][j] = Simplify(Div(aug[col][j], pv))
		}

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := aug[row][col]
			if isZero(factor) {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[row][j] = Simplify(Sub(aug[row][j], Mul(factor, aug[col][j])))
			}
		}
	}

	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, aug[i][n+j])
		}
	}
	return out, nil
}

// EquationsToMatrix decomposes a vector expression E, known to be affine in
// vars, into (A, c) with E = A*vars + c: A[i][j] = d(E_i)/d(vars_j), and c is
// E with every var substituted to zero. Because the caller guarantees E is
// affine in vars, A is independent of vars and this recovers an exact
// decomposition.
func EquationsToMatrix(e []Expr, vars []*Symbol) (a Matrix, c Matrix, err error) {
	n := len(e)
	m := len(vars)
	a = NewMatrix(n, m)
	zero := ZeroMap(vars)
	cVec := make([]Expr, n)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			a.Set(i, j, Simplify(Diff(e[i], vars[j])))
		}
		cVec[i] = Simplify(SubstMap(e[i], zero))
	}
	c = ColumnVector(cVec)
	return a, c, nil
}

package mot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CostMatrix is a rectangular matrix of agent x task costs.
// Rows are agents (existing tracks), columns are tasks (new detections).
type CostMatrix [][]float64

// NewCostMatrix allocates rows x cols matrix filled with zeros
func NewCostMatrix(rows, cols int) CostMatrix {
	m := make(CostMatrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// CostMatrixFromDense copies gonum matrix into CostMatrix
func CostMatrixFromDense(src mat.Matrix) CostMatrix {
	rows, cols := src.Dims()
	m := NewCostMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m[i][j] = src.At(i, j)
		}
	}
	return m
}

// Dims returns number of rows (agents) and columns (tasks).
// It fails with ErrEmptyCostMatrix when either dimension is zero
// and with ErrNotTwoDimensional when rows are ragged.
func (m CostMatrix) Dims() (int, int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, ErrEmptyCostMatrix
	}
	cols := len(m[0])
	for i := range m {
		if len(m[i]) != cols {
			return 0, 0, errors.Wrapf(ErrNotTwoDimensional, "row %d has %d columns, expected %d", i, len(m[i]), cols)
		}
	}
	return len(m), cols, nil
}

// Validate checks shape and that every entry is finite
func (m CostMatrix) Validate() error {
	rows, cols, err := m.Dims()
	if err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !isFinite(m[i][j]) {
				return errors.Wrapf(ErrNonFiniteCost, "cost[%d][%d] = %v", i, j, m[i][j])
			}
		}
	}
	return nil
}

// At returns cost between agent i and task j
func (m CostMatrix) At(i, j int) float64 {
	return m[i][j]
}

// Transpose returns new matrix with agents and tasks swapped
func (m CostMatrix) Transpose() CostMatrix {
	if len(m) == 0 {
		return CostMatrix{}
	}
	t := NewCostMatrix(len(m[0]), len(m))
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// Clone returns deep copy of the matrix
func (m CostMatrix) Clone() CostMatrix {
	c := make(CostMatrix, len(m))
	for i := range m {
		c[i] = copyFloats(m[i])
	}
	return c
}

// Dense converts matrix to gonum dense matrix. Empty or ragged matrices give an error,
// since gonum does not allow zero-sized matrices.
func (m CostMatrix) Dense() (*mat.Dense, error) {
	rows, cols, err := m.Dims()
	if err != nil {
		return nil, err
	}
	data := make([]float64, 0, rows*cols)
	for i := range m {
		data = append(data, m[i]...)
	}
	return mat.NewDense(rows, cols, data), nil
}

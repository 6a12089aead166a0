package expr

import "gonum.org/v1/gonum/mat"

// JacobianMap maps each variable key to the dense derivative block of some
// value with respect to that variable, sized Dim(value)×Dim(variable).
// A key's presence means the value may depend on that variable; absence
// means the value is constant with respect to it (an implicit zero block).
type JacobianMap map[Key]*mat.Dense

// accumulate folds the chain rule for one argument into m: every upstream
// block in terms is pre-multiplied by the local Jacobian h and inserted
// under its key, ADDING to any block already present. Summation on
// collision is what makes derivatives correct when the same variable is
// reachable through several argument paths, so plain insertion is never
// acceptable here.
//
// A nil h means the argument produced no local Jacobian (it was constant)
// and contributes nothing.
//
// Complexity: O(|terms|) dense multiplies of h against upstream blocks.
func (m JacobianMap) accumulate(h *mat.Dense, terms JacobianMap) {
	// 1) Constant argument: nothing to fold.
	if h == nil {
		return
	}

	// 2) Pre-multiply every upstream block and insert-or-add.
	var key Key
	var block *mat.Dense
	for key, block = range terms {
		prod := new(mat.Dense)
		prod.Mul(h, block)
		if have, ok := m[key]; ok {
			have.Add(have, prod)
		} else {
			m[key] = prod
		}
	}
}

// identity returns the n×n identity matrix, the Jacobian of a leaf with
// respect to its own variable.
func identity(n int) *mat.Dense {
	eye := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1)
	}

	return eye
}

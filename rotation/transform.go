package rotation

// Apply rotates the euclidean vector v by op's matrix: w = M·v.
// Inputs are exact lattice vectors; no rounding is involved.
// Complexity: O(1).
func Apply(op Op, v [3]int) [3]int {
	m := opMatrices[op]

	return [3]int{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// TransformCube rotates an odd-sided cube about its center cell: the value
// at euclidean offset v from the center moves to offset M·v. Cells are
// indexed [z][y][x] with the euclidean convention used throughout the
// lattice (x grows with the column index, y and z grow against the row
// and layer indices).
//
// The input must be a cube of odd side; surroundings windows always are.
// Complexity: O(s³) for side s.
func TransformCube(cells [][][]int, op Op) [][][]int {
	s := len(cells)
	r := s / 2
	out := make([][][]int, s)
	for z := 0; z < s; z++ {
		out[z] = make([][]int, s)
		for y := 0; y < s; y++ {
			out[z][y] = make([]int, s)
		}
	}
	for z := 0; z < s; z++ {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				// Euclidean offset of this cell from the center.
				v := [3]int{x - r, r - y, r - z}
				w := Apply(op, v)
				out[r-w[2]][r-w[1]][r+w[0]] = cells[z][y][x]
			}
		}
	}

	return out
}

// Package rotation: operation registry and sentinel errors.
package rotation

import (
	"errors"
	"sort"
)

// ErrUnknownOp indicates a label that names no registered operation.
var ErrUnknownOp = errors.New("rotation: unknown operation label")

// Op identifies one symmetry operation in the canonical registry.
// The zero value is Translation (the identity).
type Op int

// Translation is the identity operation.
const Translation Op = 0

// matrix is an exact integer rotation acting on euclidean column vectors.
type matrix [3][3]int

// mul returns a·b (apply b first, then a).
func (a matrix) mul(b matrix) matrix {
	var out matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}

	return out
}

// identity matrix.
var identity = matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// singleAxis holds the nine single-axis rotations in fixed order:
// x then y then z, each at 90/180/270°. Right-handed convention.
var singleLabels = []string{
	"90° X-axis", "180° X-axis", "270° X-axis",
	"90° Y-axis", "180° Y-axis", "270° Y-axis",
	"90° Z-axis", "180° Z-axis", "270° Z-axis",
}

var singleMatrices = []matrix{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},  // 90° X
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, // 180° X
	{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},  // 270° X
	{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},  // 90° Y
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, // 180° Y
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},  // 270° Y
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},  // 90° Z
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, // 180° Z
	{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},  // 270° Z
}

// axisOf maps a single-rotation index to its axis (0=x, 1=y, 2=z).
func axisOf(i int) int { return i / 3 }

var (
	opLabels   []string
	opMatrices []matrix
	opByLabel  map[string]Op
)

func init() {
	opLabels = append(opLabels, "translation")
	opMatrices = append(opMatrices, identity)

	opLabels = append(opLabels, singleLabels...)
	opMatrices = append(opMatrices, singleMatrices...)

	// Doubles: one entry per unordered different-axis pair, labeled
	// "first + second" in singles order and applied first-then-second.
	type double struct {
		label string
		mat   matrix
	}
	var doubles []double
	for i := 0; i < len(singleLabels); i++ {
		for j := i + 1; j < len(singleLabels); j++ {
			if axisOf(i) == axisOf(j) {
				continue
			}
			doubles = append(doubles, double{
				label: singleLabels[i] + " + " + singleLabels[j],
				mat:   singleMatrices[j].mul(singleMatrices[i]),
			})
		}
	}
	sort.Slice(doubles, func(a, b int) bool { return doubles[a].label < doubles[b].label })
	for _, d := range doubles {
		opLabels = append(opLabels, d.label)
		opMatrices = append(opMatrices, d.mat)
	}

	opByLabel = make(map[string]Op, len(opLabels))
	for i, l := range opLabels {
		opByLabel[l] = Op(i)
	}
}

// Ops returns all operations in canonical order: translation, the nine
// single rotations, then the 27 different-axis doubles sorted by label.
func Ops() []Op {
	out := make([]Op, len(opLabels))
	for i := range out {
		out[i] = Op(i)
	}

	return out
}

// NumOps is the size of the operation set (1 + 9 + 27).
func NumOps() int { return len(opLabels) }

// String returns the operation's label, e.g. "90° X-axis".
func (op Op) String() string {
	if op < 0 || int(op) >= len(opLabels) {
		return "invalid"
	}

	return opLabels[op]
}

// ByLabel resolves a label back to its Op.
// Returns ErrUnknownOp for labels outside the registry.
func ByLabel(label string) (Op, error) {
	op, ok := opByLabel[label]
	if !ok {
		return 0, ErrUnknownOp
	}

	return op, nil
}

// Valid reports whether op is inside the registry.
func (op Op) Valid() bool { return op >= 0 && int(op) < len(opLabels) }

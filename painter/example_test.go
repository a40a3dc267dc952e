package painter_test

import (
	"fmt"

	"github.com/katalvlaran/voxlath/grid"
	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/painter"
	"github.com/katalvlaran/voxlath/symmetry"
)

// ExamplePaint colors a two-material periodic row and reports the
// palette size and the number of distinct unit types.
func ExamplePaint() {
	g, err := grid.New([][][]int{{{1, 2}}})
	if err != nil {
		panic(err)
	}
	lat, err := lattice.Build(g)
	if err != nil {
		panic(err)
	}
	tbl, err := symmetry.Compute(lat)
	if err != nil {
		panic(err)
	}

	res, err := painter.Paint(lat, tbl)
	if err != nil {
		panic(err)
	}
	unique, err := painter.UniqueOrigami(lat, tbl)
	if err != nil {
		panic(err)
	}

	fmt.Println("colors:", res.Colors)
	fmt.Println("unique origami:", len(unique))
	// Output:
	// colors: 5
	// unique origami: 2
}

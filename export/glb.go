package export

import (
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/katalvlaran/voxlath/lattice"
)

// halfSize leaves a visible gap between neighboring cubes.
const halfSize = 0.45

// GLB builds a binary-glTF document with one cube per voxel. Each face
// is tinted by the color of the bond leaving through it; blank bonds
// render gray. All cubes share a single mesh primitive and material.
func GLB(l *lattice.Lattice) (*gltf.Document, error) {
	if l == nil {
		return nil, lattice.ErrNilGrid
	}

	n := l.NumVoxels()
	positions := make([][3]float32, 0, n*24)
	normals := make([][3]float32, 0, n*24)
	colors := make([][4]float32, 0, n*24)
	indices := make([]uint32, 0, n*36)

	for id := 0; id < n; id++ {
		v, err := l.Voxel(id)
		if err != nil {
			return nil, err
		}
		bonds, err := l.Bonds(id)
		if err != nil {
			return nil, err
		}
		center := [3]float32{float32(v.Coord[0]), float32(v.Coord[1]), float32(v.Coord[2])}

		for _, d := range lattice.Directions() {
			base := uint32(len(positions))
			nv := d.Vector()
			normal := [3]float32{float32(nv[0]), float32(nv[1]), float32(nv[2])}
			tint := faceColor(bonds[d])

			for _, corner := range faceCorners(nv) {
				positions = append(positions, [3]float32{
					center[0] + halfSize*(normal[0]+corner[0]),
					center[1] + halfSize*(normal[1]+corner[1]),
					center[2] + halfSize*(normal[2]+corner[2]),
				})
				normals = append(normals, normal)
				colors = append(colors, tint)
			}
			indices = append(indices,
				base, base+1, base+2,
				base, base+2, base+3)
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxlath"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: int(posAccessor),
			gltf.NORMAL:   int(normalAccessor),
			gltf.COLOR_0:  int(colorAccessor),
		},
		Indices: gltf.Index(int(indicesAccessor)),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{
		PBRMetallicRoughness: pbr,
		AlphaMode:            gltf.AlphaOpaque,
	}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: "Lattice", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// WriteGLB builds the document and saves it as a .glb file.
func WriteGLB(l *lattice.Lattice, path string) error {
	doc, err := GLB(l)
	if err != nil {
		return err
	}

	return gltf.SaveBinary(doc, path)
}

// faceCorners returns the four in-plane corner offsets of the face with
// the given outward normal, in fan order.
func faceCorners(normal [3]int) [4][3]float32 {
	// Tangent axes: rotate the normal's axis index forward twice.
	axis := 0
	for i, c := range normal {
		if c != 0 {
			axis = i
		}
	}
	var u, w [3]float32
	u[(axis+1)%3] = 1
	w[(axis+2)%3] = 1

	var out [4][3]float32
	signs := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i, s := range signs {
		for j := 0; j < 3; j++ {
			out[i][j] = s[0]*u[j] + s[1]*w[j]
		}
	}

	return out
}

// faceColor maps a bond to a vertex tint: hue from the absolute color
// by golden-angle stepping, brightness from the sign. Blank bonds are
// gray.
func faceColor(b lattice.Bond) [4]float32 {
	if !b.Colored {
		return [4]float32{0.5, 0.5, 0.5, 1}
	}
	c := b.Color
	if c < 0 {
		c = -c
	}
	hue := math.Mod(float64(c)*137.508, 360)
	value := 0.95
	if b.Color < 0 {
		value = 0.55
	}
	r, g, bl := hsv(hue, 0.75, value)

	return [4]float32{float32(r), float32(g), float32(bl), 1}
}

// hsv converts hue [0,360), saturation and value [0,1] to RGB.
func hsv(h, s, v float64) (r, g, b float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}

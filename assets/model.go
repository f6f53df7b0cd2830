package assets

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

// Mesh is an indexed triangle list. Triangles are counter-clockwise when seen from outside.
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Indices  []uint16
	Material string
	Color    color.RGBA // diffuse color of Material, zero when the model has none
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

// Model is a named set of meshes, one per OBJ group.
type Model struct {
	Path   string
	Meshes []*Mesh
}

// Material holds the subset of MTL data the renderer uses.
type Material struct {
	Name    string
	Diffuse color.RGBA
}

// MaterialLibLoader resolves an mtllib statement to its materials.
type MaterialLibLoader func(lib string) (map[string]Material, error)

var parserOptions = &gwob.ObjParserOptions{
	Logger: func(msg string) { log.Printf("Warning: %s", msg) },
}

// ParseOBJ reads a Wavefront OBJ model. Each group (g, or a usemtl switch inside one)
// becomes a Mesh with its own compact vertex list. loadLib is called for the mtllib
// statement, if any; a nil loadLib leaves every mesh without a color.
func ParseOBJ(r io.Reader, loadLib MaterialLibLoader) (*Model, error) {
	obj, err := gwob.NewObjFromReader("model", r, parserOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to parse obj: %w", err)
	}

	materials := map[string]Material{}
	if obj.Mtllib != "" && loadLib != nil {
		lib, err := loadLib(obj.Mtllib)
		if err != nil {
			return nil, fmt.Errorf("mtllib %s: %w", obj.Mtllib, err)
		}
		materials = lib
	}

	stride := obj.StrideSize / 4
	if stride < 3 {
		return nil, fmt.Errorf("obj has invalid vertex stride %d", obj.StrideSize)
	}
	offset := obj.StrideOffsetPosition / 4
	count := len(obj.Coord) / stride

	model := &Model{}
	for _, g := range obj.Groups {
		if g.IndexCount == 0 {
			continue
		}
		b := newMeshBuilder(g.Name)
		for _, global := range obj.Indices[g.IndexBegin : g.IndexBegin+g.IndexCount] {
			if global < 0 || global >= count {
				return nil, fmt.Errorf("group %q: index %d out of range (%d vertices)", g.Name, global, count)
			}
			base := global*stride + offset
			pos := mgl32.Vec3{obj.Coord[base], obj.Coord[base+1], obj.Coord[base+2]}
			if err := b.add(global, pos); err != nil {
				return nil, err
			}
		}

		mesh := &Mesh{
			Name:     g.Name,
			Vertices: b.vertices,
			Indices:  b.indices,
			Material: g.Usemtl,
		}
		if m, ok := materials[g.Usemtl]; ok {
			mesh.Color = m.Diffuse
		}
		model.Meshes = append(model.Meshes, mesh)
	}
	if len(model.Meshes) == 0 {
		return nil, fmt.Errorf("model has no faces")
	}
	return model, nil
}

type meshBuilder struct {
	name     string
	vertices []mgl32.Vec3
	indices  []uint16
	remap    map[int]uint16
}

func newMeshBuilder(name string) *meshBuilder {
	return &meshBuilder{name: name, remap: map[int]uint16{}}
}

// add appends one triangle corner, mapping the model-wide vertex index to a local one.
func (b *meshBuilder) add(global int, pos mgl32.Vec3) error {
	local, ok := b.remap[global]
	if !ok {
		if len(b.vertices) >= math.MaxUint16 {
			return fmt.Errorf("mesh %q exceeds %d vertices", b.name, math.MaxUint16)
		}
		local = uint16(len(b.vertices))
		b.vertices = append(b.vertices, pos)
		b.remap[global] = local
	}
	b.indices = append(b.indices, local)
	return nil
}

// ParseMTL reads a material library and keeps the diffuse color of each material.
func ParseMTL(r io.Reader) (map[string]Material, error) {
	lib, err := gwob.ReadMaterialLibFromReader(r, parserOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mtl: %w", err)
	}

	out := make(map[string]Material, len(lib.Lib))
	for name, m := range lib.Lib {
		out[name] = Material{
			Name: name,
			Diffuse: color.RGBA{
				R: unitToByte(m.Kd[0]),
				G: unitToByte(m.Kd[1]),
				B: unitToByte(m.Kd[2]),
				A: 255,
			},
		}
	}
	return out, nil
}

func unitToByte(v float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
}

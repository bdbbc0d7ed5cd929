package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

var (
	ErrMeshNotFound     = errors.New("engine: mesh not found")
	ErrMaterialNotFound = errors.New("engine: material not found")
)

// Material describes how a mesh is drawn on a terminal.
type Material struct {
	Name  string
	Glyph rune
	Color core.Color
}

// MaterialCatalog holds named materials.
type MaterialCatalog struct {
	materials map[string]Material
}

// NewMaterialCatalog creates an empty catalog.
func NewMaterialCatalog() *MaterialCatalog {
	return &MaterialCatalog{materials: make(map[string]Material)}
}

// Register adds or replaces a material.
func (c *MaterialCatalog) Register(m Material) {
	c.materials[m.Name] = m
}

// Load returns a registered material.
func (c *MaterialCatalog) Load(name string) (Material, error) {
	m, ok := c.materials[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
	}
	return m, nil
}

// Mesh is a loaded mesh bound to a scene node.
type Mesh struct {
	Path     string
	Material Material
	Node     *Node
}

// MeshParams places a mesh when it is loaded.
type MeshParams struct {
	Path     string
	Name     string // Node name, generated when empty
	Position core.Vec3
	Size     core.Vec3 // Half extents
}

// MeshCatalog maps mesh paths to the material used to draw them.
type MeshCatalog struct {
	materials *MaterialCatalog
	meshes    map[string]string
	seq       uint64
}

// NewMeshCatalog creates a catalog that resolves materials from materials.
func NewMeshCatalog(materials *MaterialCatalog) *MeshCatalog {
	return &MeshCatalog{
		materials: materials,
		meshes:    make(map[string]string),
	}
}

// Define binds a mesh path to a material name.
func (c *MeshCatalog) Define(path, material string) {
	c.meshes[path] = material
}

// Load creates a node for a known mesh. The node is not added to any scene.
func (c *MeshCatalog) Load(p MeshParams) (*Mesh, error) {
	matName, ok := c.meshes[p.Path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMeshNotFound, p.Path)
	}
	mat, err := c.materials.Load(matName)
	if err != nil {
		return nil, fmt.Errorf("engine: mesh %q: %w", p.Path, err)
	}

	name := p.Name
	if name == "" {
		c.seq++
		name = fmt.Sprintf("%s#%d", p.Path, c.seq)
	}
	node := NewNode(name, p.Position)
	node.Size = p.Size
	node.Glyph = mat.Glyph
	node.Color = mat.Color
	node.Dynamic = true

	return &Mesh{Path: p.Path, Material: mat, Node: node}, nil
}

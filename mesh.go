package chroma

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// MeshGradient is a 2-D control-color grid rasterized with bilinear
// interpolation. The grid is row-major: grid[y][x].
type MeshGradient struct {
	grid       [][]Color
	rows, cols int
	smoothness float64
}

// MeshOption configures mesh gradient construction.
type MeshOption func(*MeshGradient)

// WithMeshSmoothness blends each cell's bilinear weights through a
// smoothstep of the given strength in [0, 1]. 0 is plain bilinear; 1 is
// fully eased, hiding the grid structure at the cost of flatter centers.
func WithMeshSmoothness(s float64) MeshOption {
	return func(m *MeshGradient) { m.smoothness = clamp01(s) }
}

// NewMesh creates a mesh gradient from a rectangular control grid of at
// least 2x2 colors.
func NewMesh(grid [][]Color, opts ...MeshOption) (*MeshGradient, error) {
	rows := len(grid)
	if rows < 2 {
		return nil, &RangeError{What: "mesh grid rows", Value: float64(rows)}
	}
	cols := len(grid[0])
	if cols < 2 {
		return nil, &RangeError{What: "mesh grid columns", Value: float64(cols)}
	}
	for _, row := range grid {
		if len(row) != cols {
			return nil, &RangeError{What: "mesh grid row length", Value: float64(len(row))}
		}
	}

	copied := make([][]Color, rows)
	for y, row := range grid {
		copied[y] = make([]Color, cols)
		copy(copied[y], row)
	}

	m := &MeshGradient{grid: copied, rows: rows, cols: cols}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// At returns the bilinearly interpolated color at normalized coordinates
// (u, v) in [0, 1]. Coordinates outside the range are clamped.
func (m *MeshGradient) At(u, v float64) Color {
	u = clamp01(u)
	v = clamp01(v)

	fx := u * float64(m.cols-1)
	fy := v * float64(m.rows-1)
	x0 := int(fx)
	y0 := int(fy)
	if x0 >= m.cols-1 {
		x0 = m.cols - 2
	}
	if y0 >= m.rows-1 {
		y0 = m.rows - 2
	}
	tx := fx - float64(x0)
	ty := fy - float64(y0)
	if m.smoothness > 0 {
		tx = tx + m.smoothness*(smoothstep(tx)-tx)
		ty = ty + m.smoothness*(smoothstep(ty)-ty)
	}

	c00 := m.grid[y0][x0]
	c10 := m.grid[y0][x0+1]
	c01 := m.grid[y0+1][x0]
	c11 := m.grid[y0+1][x0+1]

	top := lerpColor(c00, c10, tx)
	bottom := lerpColor(c01, c11, tx)
	return lerpColor(top, bottom, ty)
}

// Rasterize renders the mesh to an image at the given resolution. Higher
// resolution trades raster cost for quality.
func (m *MeshGradient) Rasterize(width, height int) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		v := 0.0
		if height > 1 {
			v = float64(y) / float64(height-1)
		}
		for x := 0; x < width; x++ {
			u := 0.0
			if width > 1 {
				u = float64(x) / float64(width-1)
			}
			c := m.At(u, v)
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = unitToByte(c.A)
		}
	}
	return img
}

// CSS returns a layered radial-gradient approximation of the mesh: one
// soft radial layer per control point over a base fill. CSS cannot express
// a true mesh; use Rasterize for exact output.
func (m *MeshGradient) CSS() string {
	layers := make([]string, 0, m.rows*m.cols)
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			px := math.Round(float64(x) / float64(m.cols-1) * 100)
			py := math.Round(float64(y) / float64(m.rows-1) * 100)
			c := m.grid[y][x]
			layers = append(layers, fmt.Sprintf(
				"radial-gradient(at %d%% %d%%, %s 0%%, transparent 70%%)",
				int(px), int(py), c.Hex()))
		}
	}
	return strings.Join(layers, ", ")
}

// lerpColor interpolates two colors channel-wise in sRGB.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: clampByte(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampByte(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampByte(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: a.A + (b.A-a.A)*t,
	}
}

// smoothstep is the cubic Hermite easing 3t²-2t³.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

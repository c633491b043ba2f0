package chroma

import (
	"errors"
	"strings"
	"testing"
)

func checkerGrid() [][]Color {
	return [][]Color{
		{Black, White},
		{White, Black},
	}
}

func TestNewMeshValidation(t *testing.T) {
	tests := []struct {
		name string
		grid [][]Color
	}{
		{"nil grid", nil},
		{"one row", [][]Color{{Red, Blue}}},
		{"one column", [][]Color{{Red}, {Blue}}},
		{"ragged rows", [][]Color{{Red, Blue}, {Green}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMesh(tt.grid)
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Errorf("NewMesh error = %v, want *RangeError", err)
			}
		})
	}
}

func TestMeshCorners(t *testing.T) {
	grid := [][]Color{
		{Red, Green},
		{Blue, Yellow},
	}
	m, err := NewMesh(grid)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	tests := []struct {
		u, v float64
		want Color
	}{
		{0, 0, Red},
		{1, 0, Green},
		{0, 1, Blue},
		{1, 1, Yellow},
		// Out-of-range coordinates clamp to the edge.
		{-1, -1, Red},
		{2, 2, Yellow},
	}
	for _, tt := range tests {
		if got := m.At(tt.u, tt.v); !got.Equal(tt.want) {
			t.Errorf("At(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestMeshBilinearCenter(t *testing.T) {
	m, err := NewMesh(checkerGrid())
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	got := m.At(0.5, 0.5)
	if !got.Equal(NewRGB(128, 128, 128)) {
		t.Errorf("At(0.5, 0.5) = %v, want mid-gray", got)
	}
}

func TestMeshGridIsCopied(t *testing.T) {
	grid := checkerGrid()
	m, err := NewMesh(grid)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	grid[0][0] = Red
	if got := m.At(0, 0); !got.Equal(Black) {
		t.Errorf("mutating the input grid changed the mesh: %v", got)
	}
}

func TestMeshSmoothness(t *testing.T) {
	plain, err := NewMesh(checkerGrid())
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	eased, err := NewMesh(checkerGrid(), WithMeshSmoothness(1))
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	// Easing pulls quarter-points toward the nearer control color but
	// leaves the midpoint alone.
	if p, e := plain.At(0.25, 0), eased.At(0.25, 0); e.R >= p.R {
		t.Errorf("eased quarter-point %v not pulled below plain %v", e, p)
	}
	if p, e := plain.At(0.5, 0.5), eased.At(0.5, 0.5); !p.Equal(e) {
		t.Errorf("easing moved the midpoint: %v vs %v", p, e)
	}
}

func TestMeshRasterize(t *testing.T) {
	grid := [][]Color{
		{Red, Green},
		{Blue, Yellow},
	}
	m, err := NewMesh(grid)
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	img := m.Rasterize(8, 6)
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("raster bounds = %v, want 8x6", b)
	}

	corners := []struct {
		x, y int
		want Color
	}{
		{0, 0, Red},
		{7, 0, Green},
		{0, 5, Blue},
		{7, 5, Yellow},
	}
	for _, tt := range corners {
		i := img.PixOffset(tt.x, tt.y)
		got := NewRGB(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		if !got.Equal(tt.want) {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if img.Pix[i+3] != 255 {
			t.Errorf("pixel (%d, %d) alpha = %d, want 255", tt.x, tt.y, img.Pix[i+3])
		}
	}

	// Degenerate sizes clamp to one pixel instead of failing.
	tiny := m.Rasterize(0, 0)
	if b := tiny.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("degenerate raster bounds = %v, want 1x1", b)
	}
}

func TestMeshCSS(t *testing.T) {
	m, err := NewMesh(checkerGrid())
	if err != nil {
		t.Fatalf("NewMesh error: %v", err)
	}
	css := m.CSS()
	if got := strings.Count(css, "radial-gradient("); got != 4 {
		t.Errorf("CSS has %d layers, want 4", got)
	}
	if !strings.Contains(css, "at 0% 0%, #000000 0%, transparent 70%") {
		t.Errorf("CSS missing top-left layer: %q", css)
	}
	if !strings.Contains(css, "at 100% 100%, #000000 0%") {
		t.Errorf("CSS missing bottom-right layer: %q", css)
	}
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/chromakit/chroma"
)

// swatch renders a color block followed by its hex value. With --no-color
// only the hex value is printed.
func swatch(c chroma.Color) string {
	if noColor {
		return c.Hex()
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("      ")
	return block + " " + c.Hex()
}

// labeled renders a right-padded label next to a swatch.
func labeled(label string, c chroma.Color) string {
	return fmt.Sprintf("%-8s %s", label, swatch(c))
}

package domain

import "fmt"

type Layer struct {
	Name    string
	Color   string
	Circles []Circle
}

func LayerName(index int) string {
	return fmt.Sprintf("Layer %d", index+1)
}

// FormatColor renders a 32-bit value as "#rrggbbaa" style hex.
func FormatColor(value uint32) string {
	return fmt.Sprintf("#%08x", value)
}

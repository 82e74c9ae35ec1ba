package cmd

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ggmaddr/watersort/internal/puzzle"
)

// ansiColors maps the common palette tokens onto terminal colors.
// Tokens outside the map get a color hashed from their name so the same
// token always renders the same.
var ansiColors = map[puzzle.Color]string{
	"red":    "1",
	"green":  "2",
	"yellow": "3",
	"blue":   "4",
	"purple": "5",
	"cyan":   "6",
	"silver": "7",
	"pink":   "13",
	"orange": "208",
	"brown":  "94",
	"lime":   "10",
	"teal":   "30",
	"navy":   "17",
	"olive":  "58",
	"maroon": "52",
	"gold":   "220",
}

func unitStyle(c puzzle.Color) lipgloss.Style {
	code, ok := ansiColors[c]
	if !ok {
		h := fnv.New32a()
		h.Write([]byte(c))
		code = fmt.Sprint(h.Sum32()%214 + 16)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// renderState draws one tube per row, bottom to top, with a colored
// cell per unit and dots for free space.
func renderState(s *puzzle.State) string {
	var sb strings.Builder
	for i, tube := range s.Tubes {
		sb.WriteString(fmt.Sprintf("%3d [", i))
		for j := 0; j < s.Capacity; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if j < len(tube) {
				sb.WriteString(unitStyle(tube[j]).Render("██"))
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Armature ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient (Indigo/Violet)
	s1 := termenv.String("  ┌─┐┬─┐┌┬┐┌─┐┌┬┐┬ ┬┬─┐┌─┐").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  ├─┤├┬┘│││├─┤ │ │ │├┬┘├┤ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String("  ┴ ┴┴└─┴ ┴┴ ┴ ┴ └─┘┴└─└─┘").Foreground(p.Color("#c084fc"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println()
}

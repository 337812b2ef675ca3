package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Ouro.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Teal-to-violet gradient, one color per line
	s1 := termenv.String("   ___  _   _ _ __ ___  ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  / _ \\| | | | '__/ _ \\ ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" | (_) | |_| | | | (_) |").Foreground(p.Color("#60a5fa"))
	s4 := termenv.String("  \\___/ \\__,_|_|  \\___/ ").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
}

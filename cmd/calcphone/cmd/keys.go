package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/calcphone/pkg/calc"
)

func init() {
	RegisterCommand(&Command{
		Name:  "keys",
		Short: "Show the keypad layout",
		Long: `Print the keypad, one row per line, as it appears on the phone screen.

ASCII spellings are accepted wherever a key is expected:
  *  x      for ×
  /         for ÷
  -         for −
  +/-  neg  for ±
  C  clear  for AC
  ,         for .
  enter     for =`,
		Usage: "calcphone keys",
		Run:   runKeys,
	})
}

func runKeys(env *Env, args []string) error {
	for _, row := range calc.Keypad() {
		var sb strings.Builder
		for _, label := range row {
			fmt.Fprintf(&sb, "[%s]", centre(label, 4))
		}
		fmt.Fprintln(env.Stdout, sb.String())
	}
	return nil
}

// centre pads s with spaces to width runes.
func centre(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

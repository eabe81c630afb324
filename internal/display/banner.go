package display

import (
	"fmt"
	"io"

	"github.com/backmassage/astrosave/internal/term"
)

const banner = `    _        _
   / \   ___| |_ _ __ ___  ___  __ ___   _____
  / _ \ / __| __| '__/ _ \/ __|/ _` + "`" + ` \ \ / / _ \
 / ___ \\__ \ |_| | | (_) \__ \ (_| |\ V /  __/
/_/   \_\___/\__|_|  \___/|___/\__,_| \_/ \___|`

// PrintBanner prints the ASCII art banner in the accent color.
func PrintBanner(w io.Writer) {
	p := term.Colors()
	fmt.Fprintln(w, p.Paint(p.Accent, banner))
}

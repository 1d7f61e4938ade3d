package cli

import (
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/entropass/entropass/internal/service"
	"github.com/entropass/entropass/internal/weakness"
)

// RenderResult prints a generation result, preceded by a warning when no
// secure candidate was found.
func RenderResult(w io.Writer, out *service.GenerateOutput) {
	if !out.Secure {
		fmt.Fprintln(w, "Warning: Having difficulty generating a secure password!")
		fmt.Fprintln(w, "Consider increasing length or character diversity.")
	}

	fmt.Fprintf(w, "\nGenerated Password: %s\n", out.Password)
	fmt.Fprintln(w, "Security Analysis:")
	fmt.Fprintf(w, "- Entropy: %.1f bits (%s)\n", out.EntropyBits, out.Label)
	fmt.Fprintf(w, "- Length: %d characters\n", out.Length)
	fmt.Fprintf(w, "- Character types: %d letters, %d symbols, %d numbers\n",
		out.Composition.Letters, out.Composition.Symbols, out.Composition.Numbers)
	fmt.Fprintf(w, "- Attempts: %d\n", out.Attempts)
}

// RenderCheck prints the weakness findings for a password.
func RenderCheck(w io.Writer, report weakness.Report) {
	if !report.Weak() {
		fmt.Fprintln(w, "No weaknesses found.")
		return
	}
	fmt.Fprintln(w, "Weaknesses found:")
	for _, reason := range report.Reasons() {
		fmt.Fprintf(w, "- Password %s\n", reason.Describe())
	}
}

// RenderQR prints password as a QR code made of terminal block characters.
func RenderQR(w io.Writer, password string) error {
	q, err := qrcode.New(password, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}
	_, err = io.WriteString(w, q.ToSmallString(false))
	return err
}

// Package cli reads generation settings from a terminal and renders results.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/entropass/entropass/internal/generator"
)

// ErrInputClosed is returned when input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter creates a Prompter.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Answers holds everything the interactive session collects.
type Answers struct {
	MinEntropyBits   float64
	ExcludeAmbiguous bool
	Composition      generator.Composition
}

// Ask runs the full interactive session.
func (p *Prompter) Ask() (*Answers, error) {
	fmt.Fprintln(p.w, "Welcome to the entropy-bit password generator!")
	fmt.Fprintln(p.w)

	bits, err := p.askFloat("What number of entropy bits would you like?: ")
	if err != nil {
		return nil, err
	}
	exclude, err := p.askYesNo("Exclude ambiguous characters? This increases randomness. (y/n): ")
	if err != nil {
		return nil, err
	}
	comp, err := p.AskComposition()
	if err != nil {
		return nil, err
	}

	return &Answers{MinEntropyBits: bits, ExcludeAmbiguous: exclude, Composition: comp}, nil
}

// AskComposition asks for the per-class counts until they form a valid
// composition.
func (p *Prompter) AskComposition() (generator.Composition, error) {
	for {
		var comp generator.Composition
		var ok bool
		var err error

		if comp.Letters, ok, err = p.readInt(fmt.Sprintf("How many letters? (min %d): ", generator.MinLetters)); err != nil {
			return comp, err
		}
		if ok {
			comp.Symbols, ok, err = p.readInt(fmt.Sprintf("How many symbols? (min %d): ", generator.MinSymbols))
			if err != nil {
				return comp, err
			}
		}
		if ok {
			comp.Numbers, ok, err = p.readInt(fmt.Sprintf("How many numbers? (min %d): ", generator.MinNumbers))
			if err != nil {
				return comp, err
			}
		}
		if !ok {
			fmt.Fprintln(p.w, "Please enter valid numbers.")
			continue
		}

		if comp.Letters < generator.MinLetters || comp.Symbols < generator.MinSymbols || comp.Numbers < generator.MinNumbers {
			fmt.Fprintln(p.w, "Minimum requirements not met. Please try again.")
			continue
		}
		if comp.Total() < generator.MinLength {
			fmt.Fprintf(p.w, "Minimum total length is %d. Please try again.\n", generator.MinLength)
			continue
		}
		return comp, nil
	}
}

func (p *Prompter) askFloat(prompt string) (float64, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil && v >= 0 {
			return v, nil
		}
		fmt.Fprintln(p.w, "Please enter a valid number.")
	}
}

func (p *Prompter) askYesNo(prompt string) (bool, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	return ParseYesNo(line), nil
}

// readInt reports ok=false when the answer is not an integer.
func (p *Prompter) readInt(prompt string) (int, bool, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, false, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, false, nil
	}
	return v, true, nil
}

func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ParseYesNo returns true for "y" or "yes" in any case.
func ParseYesNo(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}

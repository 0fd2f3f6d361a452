package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers line by line and writes prompts to out.
type Prompter struct {
	in           *bufio.Reader
	out          io.Writer
	readPassword func() (string, error)
}

// NewPrompter hides password input when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		p.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(p.out)
			return string(b), err
		}
	}
	return p
}

func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// Ask prints label and returns the trimmed answer. It returns io.EOF once
// input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) AskRequired(label string) (string, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		p.Printf("%s is required.\n", label)
	}
}

func (p *Prompter) AskPassword(label string) (string, error) {
	if p.readPassword == nil {
		return p.Ask(label)
	}
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readPassword()
}

func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// AskFloat re-prompts until the answer parses. A blank answer returns nil
// unless required is set.
func (p *Prompter) AskFloat(label string, required bool) (*float64, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return nil, err
		}
		if answer == "" && !required {
			return nil, nil
		}
		v, perr := strconv.ParseFloat(strings.ReplaceAll(answer, ",", ""), 64)
		if perr == nil {
			return &v, nil
		}
		p.Println("Please enter a number.")
	}
}

func (p *Prompter) AskInt(label string, required bool) (*int, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return nil, err
		}
		if answer == "" && !required {
			return nil, nil
		}
		v, perr := strconv.Atoi(answer)
		if perr == nil {
			return &v, nil
		}
		p.Println("Please enter a whole number.")
	}
}

// AskIntInRange re-prompts until the answer is a whole number in [min, max].
func (p *Prompter) AskIntInRange(label string, min, max int) (int, error) {
	for {
		v, err := p.AskInt(label, true)
		if err != nil {
			return 0, err
		}
		if *v >= min && *v <= max {
			return *v, nil
		}
		p.Printf("Please enter a number between %d and %d.\n", min, max)
	}
}

// AskChoice re-prompts until the answer is one of options. A blank answer
// returns fallback when fallback is not empty.
func (p *Prompter) AskChoice(label string, options []string, fallback string) (string, error) {
	prompt := fmt.Sprintf("%s (%s)", label, strings.Join(options, "/"))
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		if answer == "" && fallback != "" {
			return fallback, nil
		}
		for _, o := range options {
			if answer == o {
				return o, nil
			}
		}
		p.Printf("Please choose one of: %s\n", strings.Join(options, ", "))
	}
}

// AskList splits a comma separated answer, dropping blanks.
func (p *Prompter) AskList(label string) ([]string, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return nil, err
	}
	var items []string
	for _, item := range strings.Split(answer, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}

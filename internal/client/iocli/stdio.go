package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type Stdio struct {
	in      *bufio.Reader
	out     io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// NewStdio создает IO поверх os.Stdin/os.Stdout; цвет включается только для терминала
func NewStdio() IO {
	return New(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// New создает IO поверх произвольных потоков
func New(in io.Reader, out io.Writer, colored bool) *Stdio {
	s := &Stdio{
		in:      bufio.NewReader(in),
		out:     out,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{s.success, s.warning, s.failure} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Success(format string, a ...any) {
	_, _ = s.success.Fprintln(s.out, fmt.Sprintf(format, a...))
}

func (s *Stdio) Warning(format string, a ...any) {
	_, _ = s.warning.Fprintln(s.out, fmt.Sprintf(format, a...))
}

func (s *Stdio) Error(format string, a ...any) {
	_, _ = s.failure.Fprintln(s.out, fmt.Sprintf(format, a...))
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	if prompt != "" {
		s.Printf("%s", prompt)
	}

	input, err := s.in.ReadString('\n')
	if err != nil {
		// Последняя строка без перевода строки
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}

	return strings.TrimSpace(input), nil
}

func (s *Stdio) Confirm(prompt string) (bool, error) {
	answer, err := s.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

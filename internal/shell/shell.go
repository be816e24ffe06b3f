// Package shell is an interactive prompt that calls module operations one at
// a time. It works against any ports implementation, so the same session can
// drive the linked packages or a loaded library.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/bft-labs/modbridge/internal/ports"
)

const prompt = "modbridge> "

var (
	// ErrUnknownCommand is returned for input that names no command.
	ErrUnknownCommand = errors.New("modbridge/shell: unknown command")

	// ErrUsage is returned when a command gets the wrong arguments.
	ErrUsage = errors.New("modbridge/shell: bad arguments")
)

// Shell evaluates one command line at a time.
type Shell struct {
	calc ports.Calculator
	proc ports.StringProcessor
	out  io.Writer
}

// New creates a Shell that prints to out.
func New(calc ports.Calculator, proc ports.StringProcessor, out io.Writer) *Shell {
	return &Shell{calc: calc, proc: proc, out: out}
}

type command struct {
	usage string
	run   func(s *Shell, args []string, rest string) (string, error)
}

var commands = map[string]command{
	"add": {"add <a> <b>", func(s *Shell, args []string, _ string) (string, error) {
		n, err := ints(args, 2)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(s.calc.Add(n[0], n[1]))), nil
	}},
	"multiply": {"multiply <a> <b>", func(s *Shell, args []string, _ string) (string, error) {
		n, err := ints(args, 2)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(s.calc.Multiply(n[0], n[1]))), nil
	}},
	"factorial": {"factorial <n>", func(s *Shell, args []string, _ string) (string, error) {
		n, err := ints(args, 1)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(s.calc.Factorial(n[0]), 10), nil
	}},
	"max": {"max <a> <b> <c>", func(s *Shell, args []string, _ string) (string, error) {
		n, err := ints(args, 3)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(s.calc.MaxOfThree(n[0], n[1], n[2]))), nil
	}},
	"reverse": {"reverse <text>", func(s *Shell, _ []string, rest string) (string, error) {
		return s.proc.Reverse(rest)
	}},
	"upper": {"upper <text>", func(s *Shell, _ []string, rest string) (string, error) {
		return s.proc.ToUpper(rest)
	}},
	"words": {"words <text>", func(s *Shell, _ []string, rest string) (string, error) {
		n, err := s.proc.WordCount(rest)
		return strconv.Itoa(n), err
	}},
	"concat": {"concat <separator> <part>...", func(s *Shell, args []string, _ string) (string, error) {
		if len(args) < 1 {
			return "", fmt.Errorf("%w: concat needs a separator", ErrUsage)
		}
		return s.proc.Concat(args[1:], args[0])
	}},
}

// Exec runs a single command line. quit is true for "quit" and "exit".
func (s *Shell) Exec(line string) (out string, quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	switch name {
	case "quit", "exit":
		return "", true, nil
	case "help":
		return help(), false, nil
	}

	cmd, ok := commands[name]
	if !ok {
		return "", false, fmt.Errorf("%w: %s (try help)", ErrUnknownCommand, fields[0])
	}
	rest := strings.TrimSpace(line[len(fields[0]):])
	out, err = cmd.run(s, fields[1:], rest)
	return out, false, err
}

// Run reads commands from the terminal until EOF, Ctrl+C or quit.
// History is loaded from and saved to historyPath when it is not empty.
func (s *Shell) Run(historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(Complete)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer saveHistory(ln, historyPath)
	}

	fmt.Fprintln(s.out, "Type help for commands, quit to exit.")
	for {
		input, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(input)

		out, quit, err := s.Exec(input)
		switch {
		case quit:
			return nil
		case err != nil:
			fmt.Fprintf(s.out, "error: %v\n", err)
		case out != "":
			fmt.Fprintln(s.out, out)
		}
	}
}

// Complete returns the command names starting with line.
func Complete(line string) []string {
	var out []string
	prefix := strings.ToLower(line)
	for _, name := range names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

func names() []string {
	out := []string{"exit", "help", "quit"}
	for name := range commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func help() string {
	usages := make([]string, 0, len(commands)+2)
	for _, cmd := range commands {
		usages = append(usages, "  "+cmd.usage)
	}
	usages = append(usages, "  help", "  quit")
	sort.Strings(usages)
	return "commands:\n" + strings.Join(usages, "\n")
}

func ints(args []string, n int) ([]int32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: want %d integers, got %d", ErrUsage, n, len(args))
	}
	out := make([]int32, n)
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a 32-bit integer", ErrUsage, a)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func saveHistory(ln *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}

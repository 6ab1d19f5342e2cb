package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leinonen/cortado/pkg/core"
)

// REPL drives the interactive Read-Eval-Print loop: readline-based line
// editing and history, multi-line paren-balanced input, and meta
// commands, grounded on the teacher's pkg/repl/repl.go.
type REPL struct {
	env       *core.Environment
	formatter *ErrorFormatter
}

func New(env *core.Environment) *REPL {
	return &REPL{env: env, formatter: NewErrorFormatter()}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cortado_history"
	}
	return filepath.Join(home, ".cortado_history")
}

func initFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cortadorc"
	}
	return filepath.Join(home, ".cortadorc")
}

// loadInitFile silently skips a missing ~/.cortadorc, matching the
// teacher's bootstrap.go tolerance for an absent stdlib file.
func (r *REPL) loadInitFile() {
	path := initFilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	forms, err := core.ReadAll(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, r.formatter.Format(err))
		return
	}
	if _, err := core.EvalAll(forms, r.env); err != nil {
		fmt.Fprintln(os.Stderr, r.formatter.Format(err))
	}
}

// Run starts the interactive REPL.
func (r *REPL) Run() error {
	r.loadInitFile()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cortado> ",
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	printWelcome()
	defer printGoodbye()

	for {
		input, err := r.readForm(rl)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}

		if handled, stop := r.handleMeta(trimmed); handled {
			if stop {
				return nil
			}
			continue
		}

		r.evalAndPrint(trimmed)
	}
}

func (r *REPL) handleMeta(input string) (handled bool, stop bool) {
	switch {
	case input == ":quit" || input == ":q" || input == "quit" || input == "exit":
		return true, true
	case input == ":help":
		printHelp()
		return true, false
	case input == ":env":
		r.printEnv()
		return true, false
	case input == ":reload":
		r.env = core.NewCoreEnvironment()
		if err := core.LoadStandardLibrary(r.env); err != nil {
			fmt.Fprintln(os.Stderr, r.formatter.Format(err))
		}
		r.loadInitFile()
		fmt.Println("environment reloaded")
		return true, false
	case strings.HasPrefix(input, ":load "):
		path := strings.TrimSpace(strings.TrimPrefix(input, ":load "))
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
			return true, false
		}
		forms, err := core.ReadAll(string(data))
		if err != nil {
			fmt.Fprintln(os.Stderr, r.formatter.Format(err))
			return true, false
		}
		result, err := core.EvalAll(forms, r.env)
		if err != nil {
			fmt.Fprintln(os.Stderr, r.formatter.Format(err))
			return true, false
		}
		fmt.Printf("=> %s\n", result.String())
		return true, false
	}
	return false, false
}

func (r *REPL) evalAndPrint(input string) {
	form, err := core.Read(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, r.formatter.Format(err))
		return
	}
	result, err := core.Eval(form, r.env)
	if err != nil {
		fmt.Fprintln(os.Stderr, r.formatter.Format(err))
		return
	}
	resultColor := color.New(color.FgGreen)
	fmt.Printf("=> %s\n", resultColor.Sprint(result.String()))
}

func (r *REPL) printEnv() {
	fmt.Printf("current namespace: %s\n", r.env.GetNamespace())
}

// readForm reads lines until parentheses balance and at least one
// non-blank, non-comment line has been seen, or until a bare meta
// command / quit keyword is typed as the only input on the first line.
func (r *REPL) readForm(rl *readline.Instance) (string, error) {
	var lines []string
	parenCount := 0
	inString := false
	escaped := false
	first := true

	primary := color.New(color.FgBlue, color.Bold)
	continuation := color.New(color.FgHiBlack)

	for {
		if first {
			rl.SetPrompt(primary.Sprint("cortado> "))
		} else {
			rl.SetPrompt(continuation.Sprint("...      "))
		}
		line, err := rl.Readline()
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if first && (strings.HasPrefix(trimmed, ":") || trimmed == "quit" || trimmed == "exit") {
			return trimmed, nil
		}
		first = false

		for _, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case '(', '[', '{':
				if !inString {
					parenCount++
				}
			case ')', ']', '}':
				if !inString {
					parenCount--
				}
			case ';':
				if !inString {
					goto doneLine
				}
			}
		}
	doneLine:
		if parenCount <= 0 && containsExpression(strings.Join(lines, "\n")) {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

func containsExpression(input string) bool {
	for _, line := range strings.Split(input, "\n") {
		inString := false
		escaped := false
		cut := len(line)
		for i, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case ';':
				if !inString {
					cut = i
				}
			}
			if cut != len(line) {
				break
			}
		}
		if strings.TrimSpace(line[:cut]) != "" {
			return true
		}
	}
	return false
}

// EvalString evaluates a single expression string and returns its
// printed result, for -e one-shot invocation.
func EvalString(env *core.Environment, input string) (string, error) {
	form, err := core.Read(input)
	if err != nil {
		return "", err
	}
	result, err := core.Eval(form, env)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

// RunScript loads and evaluates every top-level form in a file
// sequentially, optionally echoing each result (-v).
func RunScript(env *core.Environment, path string, verbose bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	forms, err := core.ReadAll(string(data))
	if err != nil {
		return err
	}
	for _, form := range forms {
		result, err := core.Eval(form, env)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("=> %s\n", result.String())
		}
	}
	return nil
}

func printWelcome() {
	title := color.New(color.FgCyan, color.Bold)
	instr := color.New(color.FgYellow)
	title.Println("Cortado")
	instr.Println("Type expressions to evaluate them, :quit to exit, :help for commands.")
	fmt.Println()
}

func printGoodbye() {
	color.New(color.FgMagenta, color.Bold).Println("Goodbye!")
}

func printHelp() {
	fmt.Println(":quit, :q      exit the REPL")
	fmt.Println(":help          show this message")
	fmt.Println(":env           show the current namespace")
	fmt.Println(":reload        rebuild the environment from scratch")
	fmt.Println(":load <file>   load and evaluate a file into the current environment")
}

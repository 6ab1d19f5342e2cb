// Command cortado is the Cortado Lisp interpreter's command-line entry
// point: an interactive REPL, a one-shot expression evaluator (-e), and
// a script runner, grounded on cmd/golisp-core/main.go's flag shape.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leinonen/cortado/internal/repl"
	"github.com/leinonen/cortado/pkg/core"
)

func main() {
	var (
		exprFlag    = flag.String("e", "", "evaluate EXPR and print the result")
		verboseFlag = flag.Bool("v", false, "echo the result of every top-level form")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-e EXPR] [-v] [script]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	env, err := core.CreateDefaultEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cortado: failed to initialize environment: %v\n", err)
		os.Exit(1)
	}

	if *exprFlag != "" {
		result, err := repl.EvalString(env, *exprFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", repl.NewErrorFormatter().Format(err))
			os.Exit(1)
		}
		fmt.Println(result)
		return
	}

	if args := flag.Args(); len(args) > 0 {
		if err := repl.RunScript(env, args[0], *verboseFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", repl.NewErrorFormatter().Format(err))
			os.Exit(1)
		}
		return
	}

	session := repl.New(env)
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "cortado: %v\n", err)
		os.Exit(1)
	}
}

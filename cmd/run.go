package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/elbeno/blisp/lisp"
	"github.com/elbeno/blisp/parser/reader"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		names, exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		lisp.InitializeUserEnv(env)
		for i := range exprs {
			err := runEval(env, names[i], exprs[i])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

func runReadExpressions(args []string) ([]string, []string, error) {
	names := make([]string, len(args))
	exprs := make([]string, len(args))
	if runExpression {
		for i := range args {
			names[i] = fmt.Sprintf("arg%d", i+1)
			exprs[i] = args[i]
		}
		return names, exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		names[i] = path
		exprs[i] = string(b)
	}
	return names, exprs, nil
}

// runEval evaluates source one line at a time, the way the repl would.
func runEval(env *lisp.LEnv, name, source string) error {
	scanner := bufio.NewScanner(strings.NewReader(source))
	for scanner.Scan() {
		v := reader.Read(name, scanner.Text())
		if v == nil {
			continue
		}
		r := env.Eval(v)
		if err := lisp.GoError(r); err != nil {
			return err
		}
		if runPrint {
			fmt.Println(r)
		}
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}

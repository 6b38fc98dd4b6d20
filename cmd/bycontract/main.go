// Command bycontract checks JSON values against contracts from the shell.
//
//	bycontract check --contract "string|number" '"abc"'
//	bycontract check --types contracts.yaml --contract User '{"email":"a@b.io"}'
//	bycontract check --contract string --contract number= --context greet '"bob"'
//	bycontract combo --combo string,number --combo object '{"x":1}'
//	bycontract types --types contracts.yaml
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitViolation = 1
	exitUsage     = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	return exitSuccess
}

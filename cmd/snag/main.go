package main

import (
	"fmt"
	"os"
)

// Exit codes
const (
	ExitSuccess     = 0
	ExitFailed      = 1 // one or more files failed to download or verify
	ExitInvalidArgs = 2
	ExitOutputError = 3 // destination could not be established
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return ExitInvalidArgs
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "fetch":
		return runFetch(cmdArgs)
	case "verify":
		return runVerify(cmdArgs)
	case "list":
		return runList(cmdArgs)
	case "help", "-h", "--help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return ExitInvalidArgs
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: snag <command> [options]

Commands:
  fetch     Download every catalog file and verify checksums
  verify    Re-verify already-downloaded files against the catalog
  list      Print the catalog

Run 'snag <command> -h' for command-specific help.`)
}

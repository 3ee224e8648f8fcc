// Command minic drives the mini compiler front end: it tokenizes, parses,
// evaluates and semantically checks small C-like programs.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

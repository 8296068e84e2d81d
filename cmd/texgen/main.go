// Package main implements the texgen binary, the command-line front end to
// the CSV to LaTeX table converter.
package main

import "github.com/texgen/go-texgen/internal/cli"

func main() {
	cli.DoCLI()
}

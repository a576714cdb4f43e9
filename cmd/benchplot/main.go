package main

import (
	"fmt"
	"os"

	"github.com/thiagonache/benchplot"
)

func main() {
	if err := benchplot.RunCLI(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

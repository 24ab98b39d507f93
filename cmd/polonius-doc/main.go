// The polonius-doc command renders a MIR program's `///` doc comments
// (on struct and function declarations) to a single standalone HTML
// page, in the style of gopls's package documentation view.
//
// Example:
//
//	$ polonius-doc prog.mir > prog.html
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ecstatic-morse/polonius.next/mir/doc"
	"github.com/ecstatic-morse/polonius.next/mir/parser"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: polonius-doc file")
		os.Exit(2)
	}
	path := flag.Arg(0)

	src, err := parser.ReadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polonius-doc: %v\n", err)
		os.Exit(1)
	}

	prog, err := parser.Parse(src, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polonius-doc: %v\n", err)
		os.Exit(1)
	}

	page, err := doc.Build(prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polonius-doc: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(page.HTML())
}

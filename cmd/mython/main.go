// Command mython runs a Mython source file and writes its output to a
// second file.
package main

import (
	"fmt"
	"os"

	"github.com/Khludnevvl/Mython"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: mython <input_file> <output_file>")
		os.Exit(1)
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "mython:", err)
		os.Exit(2)
	}
	defer in.Close()

	out, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "mython:", err)
		os.Exit(2)
	}
	defer out.Close()

	ctx := mython.NewFileContext(out)
	if err := mython.Run(in, ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mython:", err)
		os.Exit(3)
	}
}

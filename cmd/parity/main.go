package main

import "flag"
import "fmt"
import "io"
import "os"
import "strconv"

import "github.com/neurlang/parity"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parity", flag.ContinueOnError)
	fs.SetOutput(stderr)
	bits := fs.Int("bits", 16, "integer width, 8 or 16")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *bits != 8 && *bits != 16 {
		fmt.Fprintf(stderr, "unsupported -bits %d\n", *bits)
		return 2
	}
	for _, arg := range fs.Args() {
		even, err := check(arg, *bits)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		if even {
			fmt.Fprintln(stdout, arg, "even")
		} else {
			fmt.Fprintln(stdout, arg, "odd")
		}
	}
	return 0
}

func check(arg string, bits int) (bool, error) {
	n, err := strconv.ParseUint(arg, 0, bits)
	if err != nil {
		return false, fmt.Errorf("bad %d-bit value: %w", bits, err)
	}
	if bits == 8 {
		return parity.IsEven(parity.Uint8(n)), nil
	}
	return parity.IsEven(parity.Uint16(n)), nil
}

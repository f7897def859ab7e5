// Command tinyjambu is a reference driver for the TinyJambu AEAD cipher:
// encrypt and decrypt files from the shell, generate keys, and benchmark
// the permutation across variants.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := CLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

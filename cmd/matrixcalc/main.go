// Command matrixcalc evaluates matrix operations on operands read from a YAML file.
//
//	matrixcalc -f ops.yaml det a
//	matrixcalc -f ops.yaml mul a b
package main

import (
	"os"
)

func main() {
	if err := execute(newRootCmd(os.Stdout, nil)); err != nil {
		os.Exit(1)
	}
}

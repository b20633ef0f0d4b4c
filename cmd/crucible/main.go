/*
crucible computes the minimum heat loss of a crucible pushed across a grid of
city blocks, once per vehicle type.

Usage:

	crucible <command> [arguments]

Commands:

	crucible solve [input]   Print the minimum heat loss for each vehicle
	crucible version         Print version information

The input is a block of equal-length digit rows; "-" reads standard input.
See 'crucible help <command>' for flags.
*/
package main

import (
	"os"

	"github.com/katalvlaran/crucible/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

// cubectl - CLI for validating, repairing and solving 3x3 cube states.
package main

import (
	"github.com/riteshydv05/rubics-cube-sub000/internal/cli"
)

func main() {
	cli.Execute()
}

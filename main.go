// main.go
//
// Minimal entry point that delegates CLI handling to the Cobra root command in cmd/root.go

package main

import (
	"github.com/cristian949/scd1022-simulacion/cmd"
)

func main() {
	cmd.Execute()
}

// Package main starts the segselect application.
package main

import (
	"github.com/subosito/gotenv"
	"github.com/velikanov/segselect/cmd"
)

// main is the entry point for segselect.
func main() {
	_ = gotenv.Load()

	cmd.Execute()
}

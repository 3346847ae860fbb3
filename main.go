// The main package for the newswatch executable.
package main

import (
	"newswatch/cmd"
)

func main() {
	cmd.Execute()
}

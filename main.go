package main

import (
	"github.com/paniztayebi78/resite/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

package main

import (
	"github.com/jjtimmons/dnaseq/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

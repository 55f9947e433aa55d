package main

import "github.com/ComputerCraftr/SecureMacOS/internal/cli"

func main() {
	cli.Execute()
}

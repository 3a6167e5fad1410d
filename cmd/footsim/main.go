package main

import "github.com/andrescamacho/footsim-go/internal/adapters/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/neighborbank/cli/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/pairchat/pairchat/internal/cli/cmd"

func main() {
	cmd.Execute()
}

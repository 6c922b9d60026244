package main

import "github.com/nathanhack/dnastore/cmd"

func main() {
	cmd.Execute()
}

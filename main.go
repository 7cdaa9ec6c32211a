package main

import "github.com/tollscope/tollscope/cmd"

func main() {
	cmd.Execute()
}

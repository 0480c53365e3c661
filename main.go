package main

import "github.com/flixlens/flixlens/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/chordwire/chordwire/cmd"

func main() {
	cmd.Execute()
}

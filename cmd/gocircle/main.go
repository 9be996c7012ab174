package main

import "github.com/philipparndt/gocircle/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/roomforge/geo/cmd"

func main() {
	cmd.Execute()
}

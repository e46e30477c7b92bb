package main

import "floormark/cmd"

func main() {
	cmd.Execute()
}

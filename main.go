package main

import "github.com/quakemetrics/groundmotion/cmd"

func main() {
	cmd.Execute()
}

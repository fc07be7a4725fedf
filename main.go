package main

import "github.com/ryanccn/nyoom/cmd"

func main() {
	cmd.Execute()
}

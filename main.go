package main

import "github.com/mjunit/mjunit/cmd"

func main() {
	cmd.Execute()
}

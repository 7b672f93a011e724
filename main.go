package main

import "github.com/dround/dround/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/elbeno/blisp/cmd"

func main() {
	cmd.Execute()
}

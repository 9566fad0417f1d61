package main

import "github.com/KianTset/pyos/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/fxwatch/fxwatch/cli"

func main() {
	cli.Execute()
}

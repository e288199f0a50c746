package main

import "github.com/dmesquita/olimpicos/internal/cli"

func main() {
	cli.Execute()
}

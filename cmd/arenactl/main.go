package main

import "github.com/mcoot/arenarounds/internal/cli"

func main() {
	cli.Execute()
}

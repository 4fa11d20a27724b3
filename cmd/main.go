package main

import "github.com/Vovarama1992/cloudio/internal/cli"

func main() {
	cli.Execute()
}

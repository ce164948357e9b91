package main

import "flavor_remover/internal/cli"

func main() {
	cli.Execute()
}

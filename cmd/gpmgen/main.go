package main

import "gpm-datagen/internal/cli"

func main() {
	cli.Execute()
}

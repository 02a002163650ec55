package main

import "github.com/pfrederiksen/library-events/internal/cli"

func main() {
	cli.Execute()
}

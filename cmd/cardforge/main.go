package main

import "github.com/nfrund/cardforge/cmd/cardforge/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/termgo-sh/termgo/cmd"

func main() {
	cmd.Execute()
}

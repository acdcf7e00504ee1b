package main

import "github.com/schaban/mbdisasm/cmd"

func main() {
	cmd.Execute()
}

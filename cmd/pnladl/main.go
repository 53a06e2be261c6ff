package main

import "github.com/aalvaropc/pnladl/internal/cli"

func main() {
	cli.Execute()
}

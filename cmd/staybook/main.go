package main

import "github.com/aalvaropc/staybook/internal/cli"

func main() {
	cli.Execute()
}

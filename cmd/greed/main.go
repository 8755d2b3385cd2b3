package main

import "github.com/KirkDiggler/greed/internal/cli"

func main() {
	cli.Execute()
}

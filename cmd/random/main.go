package main

import "github.com/KornaPhp/random/cmd/random/cmd"

func main() {
	cmd.Execute()
}

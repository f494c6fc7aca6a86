package main

import "github.com/OpenTraceLab/padsnet/cmd/padsnet/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/OpenTraceLab/nfcant/cmd/antgen/cmd"

func main() {
	cmd.Execute()
}

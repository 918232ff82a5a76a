package main

import "github.com/theirongolddev/dreamcalc/cmd"

func main() {
	cmd.Execute()
}

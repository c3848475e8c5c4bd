package main

import "github.com/notargets/gosimplex/cmd"

func main() {
	cmd.Execute()
}

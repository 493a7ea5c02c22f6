package main

import "github.com/neurosym/logicpipe/cmd"

func main() {
	cmd.Execute()
}

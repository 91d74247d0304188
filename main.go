package main

import "github.com/notargets/goextrude/cmd"

func main() {
	cmd.Execute()
}

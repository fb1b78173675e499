package main

import "github.com/f1viz/f1viz-data-go/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/ygelfand/tocview/cmd"

func main() {
	cmd.Execute()
}

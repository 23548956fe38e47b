package main

import "github.com/tabstash/tabstash/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/muffix/pyfred-cli/cmd"

func main() {
	cmd.Execute()
}

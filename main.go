package main

import "github.com/loafworks/bread/cmd"

func main() {
	cmd.Execute()
}

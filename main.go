package main

import "github.com/tunedex/tunedex/cmd"

func main() {
	cmd.Execute()
}

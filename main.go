package main

import "github.com/kevinemt0605/vitalmoto/cmd"

func main() {
	cmd.Execute()
}

package main

import "farm-market/commands"

func main() {
	commands.Execute()
}

package main

import (
	"sheetcrm/cmd/server/commands"
)

var (
	version = "dev" // set during build
)

func main() {
	commands.Version = version
	commands.Execute()
}

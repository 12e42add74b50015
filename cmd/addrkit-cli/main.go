package main

import (
	"github.com/addrkit/addrkit/cmd/addrkit-cli/commands"
)

// Version contains the app version, the value is changed during compile time to the appropriate Git tag
var Version = "dev"

func main() {
	commands.SetVersion(Version)
	commands.Execute()
}

package main

import (
	wizardcmd "github.com/efocats/efowizard/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	wizardcmd.SetVersionInfo(version, commit)
	wizardcmd.Execute()
}

package main

import (
	"os"

	"github.com/eduteams/eduteams-cli/cmd/login"
)

func main() {
	os.Exit(login.Execute(os.Args, os.Stdout, os.Stderr))
}

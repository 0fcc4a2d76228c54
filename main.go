package main

import "github.com/mediscan/appshell/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/nrundek/duxburyInfo/cmd"

func main() {
	cmd.Execute()
}

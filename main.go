package main

import "github.com/Tiliavir/hours-tracker/cmd"

func main() {
	cmd.Execute()
}

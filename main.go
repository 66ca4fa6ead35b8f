package main

import "paisa/cmd"

func main() {
	cmd.Execute()
}

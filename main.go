package main

import "github.com/yourhome24/expose/cmd"

func main() {
	cmd.Execute()
}

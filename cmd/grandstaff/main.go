package main

import "github.com/RyanBlaney/grandstaff/cli"

func main() {
	cli.Execute()
}

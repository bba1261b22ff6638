package main

import "github.com/mpapenbr/f1-telemetry-producer/cmd"

func main() {
	cmd.Execute()
}

package main

import "commute-agent/cli"

func main() {
	cli.Execute()
}

package main

import "minka-treasury/cmd/action-cli/cmd"

func main() {
	cmd.Execute()
}

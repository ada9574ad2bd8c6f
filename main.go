package main

import "gitlab.com/begraf/trailpost/cmd"

func main() {
	cmd.Execute()
}

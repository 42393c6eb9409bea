package main

import "github.com/twobob/openRouterFree/cmd"

func main() {
	cmd.Execute()
}

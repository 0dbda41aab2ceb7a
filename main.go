package main

import "metaapi/cmd"

func main() {
	cmd.Execute()
}

package main

import "file-gateway/cmd"

func main() {
	cmd.Execute()
}

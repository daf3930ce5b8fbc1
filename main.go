package main

import "github.com/will-rowe/quill/cmd"

func main() {
	cmd.Execute()
}

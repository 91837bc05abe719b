// Package main is the entry point for the asciify CLI.
package main

import "asciify.dev/pkg/asciify/cmd"

func main() {
	cmd.Execute()
}

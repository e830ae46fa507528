// Package main is the entry point for the snipcomp CLI.
package main

import "snipcomp.dev/pkg/snipcomp/cmd"

func main() {
	cmd.Execute()
}

// Package main implements the consoletable binary.
package main

import "github.com/bjaus/consoletable/internal/cli"

func main() {
	cli.Execute()
}

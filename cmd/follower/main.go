package main

import (
	"github.com/NVIDIA/path-follower/pkg/cli"
)

func main() {
	cli.Execute()
}

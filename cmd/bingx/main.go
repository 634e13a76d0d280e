package main

import (
	"github.com/c9s/bingx/pkg/cmd"
)

func main() {
	cmd.Execute()
}

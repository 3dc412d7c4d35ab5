package main

import (
	"github.com/consensys/go-mersenne/pkg/cmd"
)

func main() {
	cmd.Execute()
}

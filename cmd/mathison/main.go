package main

import (
	"os"

	"github.com/mathison-ai/mathison-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}

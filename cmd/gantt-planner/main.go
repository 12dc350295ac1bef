package main

import (
	"fmt"
	"os"

	"github.com/ytget/gantt-planner/internal/launcher"
)

var version = "dev"

func main() {
	if err := launcher.Run(os.Args[1:], os.Getenv, version); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", launcher.AppName, err)
		os.Exit(2)
	}
}

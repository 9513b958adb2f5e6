package main

import (
	"os"

	// Import to ensure handler factory init() registration runs
	_ "github.com/bundlekit/ruleset/pkg/handlers"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

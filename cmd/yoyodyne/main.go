// Package main provides the yoyodyne toolkit CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("yoyodyne %s\n", version)
		return
	}

	fmt.Println("yoyodyne - Small-Vocabulary Sequence-to-Sequence Toolkit")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Coming soon: train, predict")
}

package main

import (
	"context"
	"os"

	"github.com/armsmith/armsmith/internal/cmd"
	"github.com/fatih/color"
)

func main() {
	ctx := context.Background()
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/connectn"
	"github.com/vovakirdan/connectn/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List player strategies and colors",
	Long:  `Shows every registered player strategy and the piece colors players can use.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	strategies := registry.List()

	fmt.Println("Strategies:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Human", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, s := range strategies {
		human := "no"
		if s.Interactive {
			human = "yes"
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, s.ID, human, s.Description)
	}

	fmt.Println()
	fmt.Println("Colors:")
	fmt.Println()
	for _, c := range connectn.Colors() {
		fmt.Printf("  %s\n", c)
	}

	fmt.Println()
	fmt.Println("Run 'connectn play --player name:strategy:color ...' to choose players.")
}

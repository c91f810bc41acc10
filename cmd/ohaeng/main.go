package main

import (
	"os"

	"github.com/wonny/ohaeng/backend/cmd/ohaeng/commands"
)

// main is the entry point for the ohaeng CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/ohaeng [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"

	"orbitalintel.ai/tools/internal/interfaces/cli"
	"orbitalintel.ai/tools/internal/interfaces/di"
)

func main() {
	container := di.NewContainer()
	os.Exit(cli.Execute(context.Background(), cli.NewWifiCommand(container.GetCLIContainer()), os.Args[1:], os.Stderr))
}

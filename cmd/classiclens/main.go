package main

import (
	"fmt"
	"os"

	"github.com/kriptolens/classiclens/internal/cli"
	"github.com/kriptolens/classiclens/internal/config"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.General.Debug {
		fmt.Printf("classiclens starting with config: %+v\n", cfg)
	}

	display := cli.NewConsoleDisplay()
	input := cli.NewConsoleInput()
	factory := cli.NewMethodProcessorFactory(cfg.GetClassicConfig())

	menu := cli.NewMenu(display, input, factory)
	if err := menu.Run(); err != nil {
		display.ShowError(err)
		os.Exit(1)
	}
}

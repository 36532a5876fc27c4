package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/gui"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	flag.String("config", defaultConfigFile, "path to a JSON config file")
	presets := flag.Bool("presets", false, "list the built-in patterns and exit")

	config, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if *presets {
		for _, name := range model.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	board, playback, err := initializeGame(config)
	if err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch config.Host {
	case utils.HostTerminal:
		err = runTerminal(ctx, config, board, playback)
	case utils.HostTUI:
		err = runTUI(ctx, board, playback)
	case utils.HostGUI:
		err = gui.Run(board, playback, model.Presets(), config.Scale)
	}
	if err != nil {
		log.Fatal(err)
	}
}

const defaultConfigFile = "config.json"

// loadConfig reads the file named by -config. Only a missing default file
// falls back to the built-in defaults.
func loadConfig(args []string) (utils.Config, error) {
	path := configFileFromArgs(args, "")
	if path != "" {
		return utils.LoadConfig(path)
	}
	config, err := utils.LoadConfig(defaultConfigFile)
	if err != nil && os.IsNotExist(errors.Cause(err)) {
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// configFileFromArgs finds -config before flag parsing so file values can be
// loaded first and then overridden by the remaining flags
func configFileFromArgs(args []string, fallback string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

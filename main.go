package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"git.lost.host/meutraa/nota/internal/config"
	"git.lost.host/meutraa/nota/internal/sound"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	if cfg.ListDevices {
		outputs := sound.Outputs()
		ids := make([]int, 0, len(outputs))
		for id := range outputs {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			fmt.Printf("%3v) %v\n", id, outputs[id])
		}
		return nil
	}

	// The terminal belongs to the renderer, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	app := &App{Config: cfg, Log: logger}
	defer app.Close()
	if err := app.Init(); nil != err {
		return err
	}
	return app.Run()
}

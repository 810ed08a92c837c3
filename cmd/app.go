package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/logging"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
)

func main() {
	os.Exit(run())
}

func run() int {
	// инициализировать параметры запуска - режим и прочее:
	appParam, err := parser.InitAppMode(os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Printf("Problem parsing arguments: %v", err)
		return 1
	}

	closer, err := logging.Setup(appParam.Log, os.Stderr)
	if err != nil {
		log.Printf("Failed to set up logging: %v", err)
		return 1
	}
	defer closer.Close()

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// запуск приложения в указанном режиме
	switch appParam.Mode {
	case model.ModeServe:
		err = appmode.RunServe(ctx, stop, appParam)
	default:
		err = appmode.RunSearch(ctx, appParam, os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Printf("Application error: %v", err)
		return 1
	}
	return 0
}

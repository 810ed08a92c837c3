// Package parser puts os.Args and environment into AppInit structure and validates it for any issues
package parser

import (
	"errors"
	"flag"
	"fmt"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

var ErrNoQuery = errors.New("didn't get a query string")

const usage = "Usage: minigrep [flags] query [file]"

// InitAppMode parses args (without the program name). lookupEnv is usually os.LookupEnv.
func InitAppMode(args []string, lookupEnv func(string) (string, bool)) (*model.AppInit, error) {
	appInit := model.AppInit{
		Search: model.SearchParam{Color: model.ColorAlways},
	}
	flagParser := flag.NewFlagSet("minigrep", flag.ContinueOnError)

	mode := flagParser.String("mode", string(model.ModeSearch), "specify mode of the app: 'search' or 'serve'")
	addr := flagParser.String("address", model.DefaultServeAddress, "listen address in 'serve'-mode")

	i := flagParser.Bool("i", false, "ignore case (same as setting "+model.IgnoreCaseEnv+")")
	n := flagParser.Bool("n", false, "enumerates output lines according to their order in input")
	c := flagParser.Bool("c", false, "show only total number of matching lines")
	flagParser.Var(&appInit.Search.Color, "color", "highlight matches: 'always', 'never' or 'auto'")

	flagParser.StringVar(&appInit.Log.File, "log-file", "", "duplicate log output into a rotated file")
	flagParser.IntVar(&appInit.Log.MaxSize, "log-max-size", 10, "max log file size in MB before rotation")
	flagParser.IntVar(&appInit.Log.MaxBackups, "log-max-backups", 3, "max number of rotated log files to keep")
	flagParser.IntVar(&appInit.Log.MaxAge, "log-max-age", 28, "max days to keep rotated log files")

	// парсим аргументы
	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	appInit.Mode = model.AppMode(*mode)

	// проверяем режим
	switch appInit.Mode {
	case model.ModeSearch:
		if err := initSearchParam(&appInit.Search, flagParser.Args()); err != nil {
			return nil, err
		}
		_, envSet := lookupEnv(model.IgnoreCaseEnv)
		appInit.Search.IgnoreCase = *i || envSet
		appInit.Search.EnumLine = *n
		appInit.Search.CountOnly = *c
	case model.ModeServe:
		if *addr == "" {
			return nil, errors.New("empty listen address")
		}
		appInit.Address = *addr
	default:
		return nil, fmt.Errorf("unknown mode %q specified", *mode)
	}

	return &appInit, nil
}

func initSearchParam(sp *model.SearchParam, args []string) error {
	// разбираемся с запросом и входом
	switch len(args) {
	case 0:
		return fmt.Errorf("%w\n%s", ErrNoQuery, usage)
	case 1:
		sp.Query = args[0]
	default:
		sp.Query = args[0]
		sp.FilePath = args[1]
	}
	return nil
}

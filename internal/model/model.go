// Package model contains data structures for launch parameters, search settings and HTTP DTO
package model

import (
	"fmt"
	"slices"
)

type AppMode string

const (
	ModeSearch = AppMode("search")
	ModeServe  = AppMode("serve")
)

const (
	DefaultServeAddress = ":8080"
	IgnoreCaseEnv       = "IGNORE_CASE" // наличие переменной включает поиск без учета регистра
)

// ColorMode - когда подсвечивать найденные вхождения
type ColorMode string

const (
	ColorAlways = ColorMode("always")
	ColorNever  = ColorMode("never")
	ColorAuto   = ColorMode("auto") // только если stdout - терминал
)

var colorModes = []ColorMode{ColorAlways, ColorNever, ColorAuto}

func (c *ColorMode) String() string {
	return string(*c)
}

func (c *ColorMode) Set(value string) error {
	if !slices.Contains(colorModes, ColorMode(value)) {
		return fmt.Errorf("unknown color mode %q, expected one of %v", value, colorModes)
	}
	*c = ColorMode(value)
	return nil
}

type AppInit struct {
	Mode    AppMode
	Address string
	Search  SearchParam
	Log     LogParam
}

// SearchParam - хранит в себе все флаги и параметры запуска поиска
type SearchParam struct {
	Query      string    // строка для поиска
	FilePath   string    // имя файла, пустое - читаем stdin
	IgnoreCase bool      // i или IGNORE_CASE — игнорировать регистр
	Color      ColorMode // режим подсветки
	EnumLine   bool      // n — выводить номер строки перед каждой найденной строкой
	CountOnly  bool      // c — выводить только число совпавших строк
}

// LogParam - куда дополнительно писать лог и как его ротировать
type LogParam struct {
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
}

type SearchTask struct {
	Query      *string `json:"query" binding:"required"`
	Content    string  `json:"content"`
	IgnoreCase bool    `json:"ignore_case"`
	Highlight  bool    `json:"highlight"`
}

type SearchResult struct {
	TaskID      string   `json:"tid"`
	Matches     []string `json:"matches"`
	Highlighted []string `json:"highlighted,omitempty"`
	Count       int      `json:"count"`
	HashSumm    uint64   `json:"hash"`
}

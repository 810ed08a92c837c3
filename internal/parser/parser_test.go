package parser_test

import (
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestInitAppMode(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr string
		want    *model.AppInit
	}{
		{
			name: "Positive - query and file",
			args: []string{"to", "poem.txt"},
			want: &model.AppInit{
				Mode:   model.ModeSearch,
				Search: model.SearchParam{Query: "to", FilePath: "poem.txt", Color: model.ColorAlways},
			},
		},
		{
			name: "Positive - query only reads stdin",
			args: []string{"to"},
			want: &model.AppInit{
				Mode:   model.ModeSearch,
				Search: model.SearchParam{Query: "to", Color: model.ColorAlways},
			},
		},
		{
			name: "Positive - empty env var still enables ignore case",
			args: []string{"to"},
			env:  map[string]string{model.IgnoreCaseEnv: ""},
			want: &model.AppInit{
				Mode:   model.ModeSearch,
				Search: model.SearchParam{Query: "to", IgnoreCase: true, Color: model.ColorAlways},
			},
		},
		{
			name: "Positive - flags",
			args: []string{"-i", "-n", "-c", "-color", "never", "to", "poem.txt"},
			want: &model.AppInit{
				Mode: model.ModeSearch,
				Search: model.SearchParam{
					Query: "to", FilePath: "poem.txt", IgnoreCase: true,
					EnumLine: true, CountOnly: true, Color: model.ColorNever,
				},
			},
		},
		{
			name: "Positive - serve mode",
			args: []string{"-mode", "serve", "-address", ":9090"},
			want: &model.AppInit{
				Mode:    model.ModeServe,
				Address: ":9090",
				Search:  model.SearchParam{Color: model.ColorAlways},
			},
		},
		{
			name:    "Negative - missing query",
			args:    []string{},
			wantErr: "didn't get a query string",
		},
		{
			name:    "Negative - unknown mode",
			args:    []string{"-mode", "master", "q"},
			wantErr: "unknown mode",
		},
		{
			name:    "Negative - bad color",
			args:    []string{"-color", "rainbow", "q"},
			wantErr: "unknown color mode",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.InitAppMode(tt.args, env(tt.env))

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				require.Nil(t, res)
				return
			}
			require.NoError(t, err)

			// настройки лога проверяются отдельно
			res.Log = model.LogParam{}
			require.Equal(t, tt.want, res)
		})
	}
}

func TestInitAppModeNoQuerySentinel(t *testing.T) {
	_, err := parser.InitAppMode(nil, env(nil))
	require.ErrorIs(t, err, parser.ErrNoQuery)
}

func TestInitAppModeLogParam(t *testing.T) {
	res, err := parser.InitAppMode([]string{"-log-file", "/tmp/minigrep.log", "-log-max-size", "1", "q"}, env(nil))
	require.NoError(t, err)
	require.Equal(t, model.LogParam{File: "/tmp/minigrep.log", MaxSize: 1, MaxBackups: 3, MaxAge: 28}, res.Log)
}

package viewer

import (
	"testing"

	"github.com/huangsam/standings/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{Kind: CmdNone}},
		{"   ", Command{Kind: CmdNone}},
		{"quit", Command{Kind: CmdQuit}},
		{"EXIT", Command{Kind: CmdQuit}},
		{"help", Command{Kind: CmdHelp}},
		{"toggle", Command{Kind: CmdToggle}},
		{"year 2021", Command{Kind: CmdYear, Year: 2021}},
		{"y 2020", Command{Kind: CmdYear, Year: 2020}},
		{"league bundesliga", Command{Kind: CmdLeague, League: schema.Bundesliga}},
		{"league Premier League", Command{Kind: CmdLeague, League: schema.PremierLeague}},
		{"view Reduced", Command{Kind: CmdView, View: schema.ReducedView}},
		{"v full", Command{Kind: CmdView, View: schema.FullView}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, line := range []string{"year", "year abc", "year 2019", "league serie-a", "view", "view wide", "jump"} {
		_, err := ParseCommand(line)
		assert.Error(t, err, line)
	}
}

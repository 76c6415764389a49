package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/standings/schema"
)

// CommandKind identifies a viewer command.
type CommandKind int

// All viewer commands.
const (
	CmdNone CommandKind = iota
	CmdYear
	CmdLeague
	CmdView
	CmdToggle
	CmdHelp
	CmdQuit
)

// Command is one parsed input line.
type Command struct {
	Kind   CommandKind
	Year   int
	League schema.League
	View   schema.ViewMode
}

// ParseCommand parses one input line. Blank lines yield CmdNone.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdNone}, nil
	}
	name := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	switch name {
	case "quit", "exit", "q":
		return Command{Kind: CmdQuit}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "toggle", "t":
		return Command{Kind: CmdToggle}, nil

	case "year", "y":
		year, err := strconv.Atoi(arg)
		if err != nil || !schema.IsSupportedYear(year) {
			return Command{}, fmt.Errorf("unsupported year %q", arg)
		}
		return Command{Kind: CmdYear, Year: year}, nil

	case "league", "l":
		league, ok := schema.LeagueFromName(arg)
		if !ok {
			return Command{}, fmt.Errorf("unsupported league %q", arg)
		}
		return Command{Kind: CmdLeague, League: league}, nil

	case "view", "v":
		view := schema.ViewMode(strings.ToLower(arg))
		if _, ok := schema.ValidViewModes[view]; !ok {
			return Command{}, fmt.Errorf("invalid view %q", arg)
		}
		return Command{Kind: CmdView, View: view}, nil

	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

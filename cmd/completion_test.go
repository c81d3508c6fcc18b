package cmd

import (
	"flag"
	"sort"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	var names []string
	for name := range c.Sub {
		names = append(names, name)
	}
	sort.Strings(names)
	want := []string{"allocation", "blend", "compare", "import", "performance", "record", "review", "search", "summary", "topic"}
	if len(names) != len(want) {
		t.Fatalf("Completion() commands = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Completion() commands = %v, want %v", names, want)
			break
		}
	}

	for _, flagName := range []string{"config", "data", "provider", "eodhd-api-key", "v"} {
		if _, ok := c.Flags[flagName]; !ok {
			t.Errorf("Completion() has no global flag %q", flagName)
		}
	}
	testCases := []struct {
		cmd, flag string
	}{
		{"compare", "csv"},
		{"compare", "adjusted"},
		{"blend", "with"},
		{"record", "d"},
		{"allocation", "prices"},
		{"performance", "recorded"},
		{"performance", "years"},
	}
	for _, tc := range testCases {
		if _, ok := c.Sub[tc.cmd].Flags[tc.flag]; !ok {
			t.Errorf("Completion() has no flag %q for %s", tc.flag, tc.cmd)
		}
	}
}

func TestRegister(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("nestegg", flag.ContinueOnError), "nestegg")
	Register(commander)
	count := 0
	commander.VisitCommands(func(g *subcommands.CommandGroup, c subcommands.Command) { count++ })
	if count != 10 {
		t.Errorf("Register() registered %d commands, want 10", count)
	}
}

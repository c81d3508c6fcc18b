// Package cmd implements the nestegg command line application.
//
// A main package registers Commands into a subcommands.Commander and executes
// the one selected by the user.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/eodhd"
	"github.com/etnz/nestegg/yahoo"
	"github.com/google/subcommands"
)

// Environment variables, they can be set in a .env file.
const (
	EnvEodhdAPIKey = "EODHD_API_KEY"
	EnvDataDir     = "NESTEGG_DATA"
)

// Names of the files in the data directory.
const (
	valueLogFile      = "values.jsonl"
	allocationFile    = "allocation_history.csv"
	fundPricesFile    = "fund_prices_history.csv"
	transactionsFile  = "transactions.csv"
	memoTTL           = 10 * time.Minute
	defaultConfigFile = "nestegg.json"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", defaultConfigFile, "Path to the configuration file")
	dataDir      = flag.String("data", "", "Data directory holding the exports and recorded values. Defaults to $"+EnvDataDir+" or the current directory")
	providerName = flag.String("provider", "yahoo", "Price provider: yahoo or eodhd")
	eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key, it takes precedence over the "+EnvEodhdAPIKey+" environment variable. You can get one at https://eodhd.com/")
	Verbose      = flag.Bool("v", false, "Verbose logs, with timestamps and source positions")
)

// Commands are the nestegg subcommands, by group.
var Commands = map[string][]subcommands.Command{
	"analysis": {&compareCmd{}, &blendCmd{}, &summaryCmd{}, &performanceCmd{}, &reviewCmd{}},
	"data":     {&importCmd{}, &recordCmd{}, &allocationCmd{}, &searchCmd{}},
	"help":     {&topicCmd{}},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for group, cmds := range Commands {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// Setup applies the global flags, once parsed.
func Setup() {
	log.SetOutput(os.Stderr)
	if *Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	log.SetFlags(0)
	log.SetPrefix("nestegg: ")
}

// dataPath returns the path of 'name' in the data directory.
func dataPath(name string) string {
	dir := *dataDir
	if dir == "" {
		dir = os.Getenv(EnvDataDir)
	}
	return filepath.Join(dir, name)
}

// transactionSource returns the export files of the configuration.
func transactionSource(cfg *nestegg.Config) *nestegg.CSVSource {
	return &nestegg.CSVSource{Pattern: dataPath(cfg.Transactions), Currency: cfg.Currency}
}

// loadConfig loads the configuration file, defaults are used if it does not exist.
func loadConfig() (*nestegg.Config, error) {
	return nestegg.LoadConfig(*configFile)
}

// eodhdAPIKey returns the EODHD API key from the flag or the environment.
func eodhdAPIKey() string {
	if *eodhdAPIFlag != "" {
		return *eodhdAPIFlag
	}
	return os.Getenv(EnvEodhdAPIKey)
}

// newPriceProvider returns the selected price provider, memoized for the run.
func newPriceProvider(adjusted bool) (nestegg.PriceProvider, error) {
	var p nestegg.PriceProvider
	switch *providerName {
	case "yahoo":
		p = yahoo.New(adjusted)
	case "eodhd":
		key := eodhdAPIKey()
		if key == "" {
			return nil, fmt.Errorf("eodhd needs an API key: use -eodhd-api-key or $%s", EnvEodhdAPIKey)
		}
		p = eodhd.New(key, adjusted)
	default:
		return nil, fmt.Errorf("unknown price provider %q, want yahoo or eodhd", *providerName)
	}
	return nestegg.NewMemoProvider(p, memoTTL), nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Printf("cannot render markdown: %v", err)
	fmt.Println(md)
}

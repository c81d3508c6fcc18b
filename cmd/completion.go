package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the command line.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	args := map[string]complete.Predictor{
		"compare":     predict.Set(nestegg.DefaultBenchmarks),
		"import":      predict.Files("*.csv"),
		"performance": predict.Set(nestegg.DefaultBenchmarks),
		"topic":       predict.Set(append(topics, "*")),
	}

	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagPredictors(fs),
				Args:  args[c.Name()],
			}
		}
	}
	return root
}

// flagPredictors predicts the values of the flags in 'fs' from their name.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			res[f.Name] = predict.Nothing
			return
		}
		switch {
		case f.Name == "provider":
			res[f.Name] = predict.Set{"yahoo", "eodhd"}
		case f.Name == "config":
			res[f.Name] = predict.Files("*.json")
		case f.Name == "data":
			res[f.Name] = predict.Dirs("*")
		case f.Name == "csv" || f.Name == "o":
			res[f.Name] = predict.Files("*.csv")
		case strings.HasPrefix(f.Usage, "Benchmark"):
			res[f.Name] = predict.Set(nestegg.DefaultBenchmarks)
		default:
			res[f.Name] = predict.Something
		}
	})
	return res
}

package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cgt/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])

	// Shell completion, installed with `COMP_INSTALL=1 cgtcalc`.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"calculate": {Flags: map[string]complete.Predictor{
				"symbol":    predict.Nothing,
				"sell-date": predict.Nothing,
				"quantity":  predict.Nothing,
				"csv":       predict.Files("*.csv"),
				"exemption": predict.Nothing,
				"status":    predict.Set{"basic", "higher"},
				"currency":  predict.Nothing,
			}},
			"lots": {Flags: map[string]complete.Predictor{
				"csv": predict.Files("*.csv"),
			}},
			"topic": {},
		},
	}
	completion.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// Package cmd implements the CLI application to compute UK capital gains tax.
package cmd

import "github.com/google/subcommands"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Commands lists the subcommands to register, in display order.
var Commands = []subcommands.Command{
	&calculateCmd{},
	&lotsCmd{},
	&topicCmd{},
	subcommands.HelpCommand(),
	subcommands.CommandsCommand(),
	subcommands.FlagsCommand(),
}

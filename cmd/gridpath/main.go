// Command gridpath searches weighted grids read from text files.
//
//	$ gridpath search -grid terrain.txt -from 0,0 -to 9,9 -conn 8
//	$ gridpath islands -grid terrain.txt -src 0 -dst 1
//
// A grid file holds one row of whitespace-separated integers per line;
// blank lines and lines starting with '#' are ignored.
package main

import (
	"context"
	"log"
	"os"

	"github.com/gonuts/commander"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridpath: ")

	if err := rootCmd().Dispatch(context.Background(), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *commander.Command {
	return &commander.Command{
		UsageLine: "gridpath <command> [options]",
		Short:     "best-first search over weighted grids",
		Subcommands: []*commander.Command{
			searchCmd(),
			islandsCmd(),
		},
	}
}

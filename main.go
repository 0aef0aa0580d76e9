package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/habitrow/habitctl/cmd"
)

var version = "dev"

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("habitctl"),
		kong.Description("Create habit-tracking records in Notion databases"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run(&cmd.Context{})
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}

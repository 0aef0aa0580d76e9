package cmd

import (
	"context"

	"github.com/habitrow/habitctl/internal/cli"
	"github.com/habitrow/habitctl/internal/output"
)

type RunCmd struct {
	Date string `help:"Override the invocation date (YYYY-MM-DD)" short:"d"`
	JSON bool   `help:"Output as JSON" short:"j"`
}

func (c *RunCmd) Run(ctx *Context) error {
	ctx.JSON = c.JSON
	return runDue(ctx, c.Date)
}

func runDue(ctx *Context, dateFlag string) error {
	creator, cfg, err := cli.RequireCreator()
	if err != nil {
		output.PrintError(err)
		return err
	}

	day, err := resolveDay(cfg, dateFlag)
	if err != nil {
		output.PrintError(err)
		return err
	}

	created, err := creator.Run(context.Background(), day)
	if err != nil {
		// Report what did get created before the failure.
		if printErr := printCreated(ctx, created, day); printErr != nil {
			output.PrintError(printErr)
		}
		output.PrintError(err)
		return err
	}

	return printCreated(ctx, created, day)
}

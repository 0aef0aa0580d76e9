package cmd

import (
	"context"

	"github.com/habitrow/habitctl/internal/cli"
	"github.com/habitrow/habitctl/internal/habits"
	"github.com/habitrow/habitctl/internal/output"
)

type CreateCmd struct {
	Daily   CreateDailyCmd   `cmd:"" help:"Create today's daily habit record"`
	Weekly  CreateWeeklyCmd  `cmd:"" help:"Create this week's habit record, linked to the prior week"`
	Monthly CreateMonthlyCmd `cmd:"" help:"Create this month's habit record"`
}

type CreateDailyCmd struct {
	Date string `help:"Override the record date (YYYY-MM-DD)" short:"d"`
	JSON bool   `help:"Output as JSON" short:"j"`
}

func (c *CreateDailyCmd) Run(ctx *Context) error {
	ctx.JSON = c.JSON
	return runCreate(ctx, habits.Daily, c.Date)
}

type CreateWeeklyCmd struct {
	Date string `help:"Override the record date (YYYY-MM-DD)" short:"d"`
	JSON bool   `help:"Output as JSON" short:"j"`
}

func (c *CreateWeeklyCmd) Run(ctx *Context) error {
	ctx.JSON = c.JSON
	return runCreate(ctx, habits.Weekly, c.Date)
}

type CreateMonthlyCmd struct {
	Date string `help:"Override the record date (YYYY-MM-DD)" short:"d"`
	JSON bool   `help:"Output as JSON" short:"j"`
}

func (c *CreateMonthlyCmd) Run(ctx *Context) error {
	ctx.JSON = c.JSON
	return runCreate(ctx, habits.Monthly, c.Date)
}

func runCreate(ctx *Context, recordType habits.RecordType, dateFlag string) error {
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

	page, err := creator.Create(context.Background(), recordType, day)
	if err != nil {
		output.PrintError(err)
		return err
	}

	return printCreated(ctx, []habits.Created{{Type: recordType, Page: page}}, day)
}

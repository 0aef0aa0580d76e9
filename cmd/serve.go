package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/habitrow/habitctl/internal/cli"
	"github.com/habitrow/habitctl/internal/output"
	"github.com/habitrow/habitctl/internal/schedule"
)

type ServeCmd struct {
	Schedule string `help:"Cron expression for the daily run (default from config)"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	creator, cfg, err := cli.RequireCreator()
	if err != nil {
		output.PrintError(err)
		return err
	}

	expr := c.Schedule
	if expr == "" {
		expr = cfg.Schedule
	}

	loc, err := cfg.Location()
	if err != nil {
		output.PrintError(err)
		return err
	}

	job := func() {
		day := time.Now().In(loc)
		created, err := creator.Run(context.Background(), day)
		for _, c := range created {
			output.PrintSuccess(fmt.Sprintf("Created %s record: %s", c.Type, c.Page.ID))
		}
		if err != nil {
			output.PrintError(err)
		}
	}

	sched, err := schedule.New(expr, job)
	if err != nil {
		output.PrintError(err)
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	output.PrintInfo(fmt.Sprintf("Scheduler running (%s), next run %s", expr, sched.Next(time.Now().In(loc)).Format(time.RFC3339)))
	sched.Start(sigCtx)
	output.PrintInfo("Scheduler stopped")
	return nil
}

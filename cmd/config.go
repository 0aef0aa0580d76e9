package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/habitrow/habitctl/internal/cli"
	"github.com/habitrow/habitctl/internal/config"
	"github.com/habitrow/habitctl/internal/output"
)

type ConfigCmd struct {
	Show   ConfigShowCmd   `cmd:"" default:"withargs" help:"Show the effective configuration"`
	Verify ConfigVerifyCmd `cmd:"" help:"Verify the API token against Notion"`
}

type ConfigShowCmd struct {
	JSON bool `help:"Output as JSON" short:"j"`
}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	ctx.JSON = c.JSON

	cfg, err := config.Load()
	if err != nil {
		output.PrintError(err)
		return err
	}

	token := ""
	if cfg.API.Token != "" {
		token = "(set)"
	}

	if ctx.JSON {
		out := map[string]any{
			"api": map[string]any{
				"base_url":       cfg.API.BaseURL,
				"notion_version": cfg.API.NotionVersion,
				"token":          token,
			},
			"databases": map[string]any{
				"daily":   cfg.Databases.Daily,
				"weekly":  cfg.Databases.Weekly,
				"monthly": cfg.Databases.Monthly,
			},
			"summary_page_id": cfg.SummaryPageID,
			"timezone":        cfg.Timezone,
			"schedule":        cfg.Schedule,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	path, _ := config.Path()
	fmt.Printf("Config file: %s\n", path)
	fmt.Printf("API base URL: %s\n", cfg.API.BaseURL)
	fmt.Printf("Notion version: %s\n", cfg.API.NotionVersion)
	fmt.Printf("API token: %s\n", tokenStatus(token))
	fmt.Printf("Daily database: %s\n", valueOrUnset(cfg.Databases.Daily))
	fmt.Printf("Weekly database: %s\n", valueOrUnset(cfg.Databases.Weekly))
	fmt.Printf("Monthly database: %s\n", valueOrUnset(cfg.Databases.Monthly))
	fmt.Printf("Summary page: %s\n", valueOrUnset(cfg.SummaryPageID))
	fmt.Printf("Timezone: %s\n", valueOrUnset(cfg.Timezone))
	fmt.Printf("Schedule: %s\n", cfg.Schedule)
	return nil
}

type ConfigVerifyCmd struct{}

func (c *ConfigVerifyCmd) Run(ctx *Context) error {
	client, err := cli.RequireAPIClient()
	if err != nil {
		output.PrintError(err)
		return err
	}

	if err := client.VerifyToken(context.Background()); err != nil {
		output.PrintError(err)
		return err
	}

	output.PrintSuccess("API token is valid")
	return nil
}

func tokenStatus(token string) string {
	if token == "" {
		return "(not set)"
	}
	return token
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

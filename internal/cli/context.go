package cli

import (
	"fmt"

	"github.com/habitrow/habitctl/internal/api"
	"github.com/habitrow/habitctl/internal/config"
	"github.com/habitrow/habitctl/internal/habits"
)

// RequireCreator loads the configuration and wires up a record creator
// against the Notion API.
func RequireCreator() (*habits.Creator, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}

	client, err := api.NewClient(cfg.API)
	if err != nil {
		return nil, cfg, fmt.Errorf("create notion API client: %w (set api.token in ~/.config/habitctl/config.yaml or NOTION_API_TOKEN)", err)
	}

	return habits.NewCreator(client, cfg), cfg, nil
}

// RequireAPIClient returns a bare API client for operations that do not go
// through the record creator.
func RequireAPIClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	client, err := api.NewClient(cfg.API)
	if err != nil {
		return nil, fmt.Errorf("create notion API client: %w (set api.token in ~/.config/habitctl/config.yaml or NOTION_API_TOKEN)", err)
	}

	return client, nil
}

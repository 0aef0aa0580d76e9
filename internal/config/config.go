package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".config/habitctl"
	configFileName = "config.yaml"

	defaultBaseURL       = "https://api.notion.com/v1"
	defaultNotionVersion = "2022-06-28"
	defaultSchedule      = "0 7 * * *"
)

type Config struct {
	API           APIConfig        `yaml:"api"`
	Databases     DatabasesConfig  `yaml:"databases"`
	SummaryPageID string           `yaml:"summary_page_id"`
	Properties    PropertiesConfig `yaml:"properties"`
	Timezone      string           `yaml:"timezone"`
	Schedule      string           `yaml:"schedule"`
}

type APIConfig struct {
	BaseURL       string `yaml:"base_url"`
	NotionVersion string `yaml:"notion_version"`
	Token         string `yaml:"token"`
}

// DatabasesConfig holds the target database ID per record type.
type DatabasesConfig struct {
	Daily   string `yaml:"daily"`
	Weekly  string `yaml:"weekly"`
	Monthly string `yaml:"monthly"`
}

// PropertiesConfig names the page properties habit records are written to.
// Defaults match the habit tracker schema; override when a workspace uses
// different property names.
type PropertiesConfig struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Analytics string `yaml:"analytics"`
	PriorWeek string `yaml:"prior_week"`
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:       defaultBaseURL,
			NotionVersion: defaultNotionVersion,
		},
		Properties: PropertiesConfig{
			Title:     "Name",
			Date:      "Date",
			Analytics: "Habit Analytics",
			PriorWeek: "Prior Weekly Discipline",
		},
		Schedule: defaultSchedule,
	}
}

// Load reads the config file if present, expands ${VAR} references, then
// applies environment overrides and defaults. A .env file in the working
// directory is loaded first so both the file expansion and the overrides
// see it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	if data, err := os.ReadFile(path); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return cfg, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)
	return cfg, nil
}

func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Location resolves the configured time zone. Record dates are computed in
// this zone, so an operator east or west of the server still gets their own
// calendar day.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

func applyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if s := os.Getenv("NOTION_API_BASE_URL"); s != "" {
		cfg.API.BaseURL = s
	}
	if s := os.Getenv("NOTION_API_VERSION"); s != "" {
		cfg.API.NotionVersion = s
	}
	if s := os.Getenv("NOTION_API_TOKEN"); s != "" {
		cfg.API.Token = s
	}
	if s := os.Getenv("HABIT_DAILY_DATABASE_ID"); s != "" {
		cfg.Databases.Daily = s
	}
	if s := os.Getenv("HABIT_WEEKLY_DATABASE_ID"); s != "" {
		cfg.Databases.Weekly = s
	}
	if s := os.Getenv("HABIT_MONTHLY_DATABASE_ID"); s != "" {
		cfg.Databases.Monthly = s
	}
	if s := os.Getenv("HABIT_SUMMARY_PAGE_ID"); s != "" {
		cfg.SummaryPageID = s
	}
	if s := os.Getenv("HABIT_TIMEZONE"); s != "" {
		cfg.Timezone = s
	}
	if s := os.Getenv("HABIT_SCHEDULE"); s != "" {
		cfg.Schedule = s
	}
}

func normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.API.BaseURL = strings.TrimSpace(cfg.API.BaseURL)
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	cfg.API.NotionVersion = strings.TrimSpace(cfg.API.NotionVersion)
	if cfg.API.NotionVersion == "" {
		cfg.API.NotionVersion = defaultNotionVersion
	}
	cfg.API.Token = strings.TrimSpace(cfg.API.Token)

	cfg.Databases.Daily = strings.TrimSpace(cfg.Databases.Daily)
	cfg.Databases.Weekly = strings.TrimSpace(cfg.Databases.Weekly)
	cfg.Databases.Monthly = strings.TrimSpace(cfg.Databases.Monthly)
	cfg.SummaryPageID = strings.TrimSpace(cfg.SummaryPageID)
	cfg.Timezone = strings.TrimSpace(cfg.Timezone)

	cfg.Schedule = strings.TrimSpace(cfg.Schedule)
	if cfg.Schedule == "" {
		cfg.Schedule = defaultSchedule
	}

	defaults := Default().Properties
	if strings.TrimSpace(cfg.Properties.Title) == "" {
		cfg.Properties.Title = defaults.Title
	}
	if strings.TrimSpace(cfg.Properties.Date) == "" {
		cfg.Properties.Date = defaults.Date
	}
	if strings.TrimSpace(cfg.Properties.Analytics) == "" {
		cfg.Properties.Analytics = defaults.Analytics
	}
	if strings.TrimSpace(cfg.Properties.PriorWeek) == "" {
		cfg.Properties.PriorWeek = defaults.PriorWeek
	}
}

package habits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/habitrow/habitctl/internal/api"
	"github.com/habitrow/habitctl/internal/config"
)

// ErrNoPriorWeekly is returned when the weekly database has no existing
// record to link the new week to. Seed the database with a first week
// before running the weekly flow.
var ErrNoPriorWeekly = errors.New("weekly database has no existing record to link")

// PageService is the slice of the Notion API the creator needs.
type PageService interface {
	CreatePage(ctx context.Context, payload map[string]any) (*api.Page, error)
	QueryDatabase(ctx context.Context, databaseID string, query map[string]any) (*api.QueryResponse, error)
}

// Creator produces one habit record per invocation per requested type.
type Creator struct {
	svc           PageService
	databases     config.DatabasesConfig
	summaryPageID string
	props         config.PropertiesConfig
}

// Created pairs a record type with the page it produced, for fan-out runs
// that create more than one record.
type Created struct {
	Type RecordType
	Page *api.Page
}

func NewCreator(svc PageService, cfg config.Config) *Creator {
	return &Creator{
		svc:           svc,
		databases:     cfg.Databases,
		summaryPageID: cfg.SummaryPageID,
		props:         cfg.Properties,
	}
}

// Create dispatches to the creation flow for the given record type. day is
// the invocation's calendar date in the operator's time zone.
func (c *Creator) Create(ctx context.Context, t RecordType, day time.Time) (*api.Page, error) {
	switch t {
	case Daily:
		return c.CreateDaily(ctx, day)
	case Weekly:
		return c.CreateWeekly(ctx, day)
	case Monthly:
		return c.CreateMonthly(ctx, day)
	default:
		return nil, fmt.Errorf("unknown record type %q", t)
	}
}

func (c *Creator) CreateDaily(ctx context.Context, day time.Time) (*api.Page, error) {
	return c.createSimple(ctx, Daily, c.databases.Daily, day)
}

func (c *Creator) CreateMonthly(ctx context.Context, day time.Time) (*api.Page, error) {
	return c.createSimple(ctx, Monthly, c.databases.Monthly, day)
}

// CreateWeekly queries the weekly database for its latest page, then
// creates the new week's record with a relation back to it. The two calls
// are not transactional; a single scheduled invocation at a time is
// assumed.
func (c *Creator) CreateWeekly(ctx context.Context, day time.Time) (*api.Page, error) {
	if err := c.validate(Weekly, c.databases.Weekly); err != nil {
		return nil, err
	}

	resp, err := c.svc.QueryDatabase(ctx, c.databases.Weekly, latestPageQuery(c.props.Date))
	if err != nil {
		return nil, fmt.Errorf("query latest weekly record: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoPriorWeekly
	}
	priorPageID := resp.Results[0].ID

	payload := pagePayload(c.databases.Weekly, Weekly, day, c.props, c.summaryPageID, priorPageID)
	page, err := c.svc.CreatePage(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create weekly record: %w", err)
	}
	return page, nil
}

// Run creates every record due on the given day: daily always, weekly on
// Mondays, monthly on the first of the month. Creation order is daily,
// weekly, monthly; a failure aborts the run and leaves earlier creates in
// place.
func (c *Creator) Run(ctx context.Context, day time.Time) ([]Created, error) {
	due := []RecordType{Daily}
	if day.Weekday() == time.Monday {
		due = append(due, Weekly)
	}
	if day.Day() == 1 {
		due = append(due, Monthly)
	}

	created := make([]Created, 0, len(due))
	for _, t := range due {
		page, err := c.Create(ctx, t, day)
		if err != nil {
			return created, err
		}
		created = append(created, Created{Type: t, Page: page})
	}
	return created, nil
}

func (c *Creator) createSimple(ctx context.Context, t RecordType, databaseID string, day time.Time) (*api.Page, error) {
	if err := c.validate(t, databaseID); err != nil {
		return nil, err
	}

	payload := pagePayload(databaseID, t, day, c.props, c.summaryPageID, "")
	page, err := c.svc.CreatePage(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create %s record: %w", t, err)
	}
	return page, nil
}

func (c *Creator) validate(t RecordType, databaseID string) error {
	if databaseID == "" {
		return fmt.Errorf("%s database ID is not configured", t)
	}
	if c.summaryPageID == "" {
		return errors.New("summary page ID is not configured")
	}
	return nil
}

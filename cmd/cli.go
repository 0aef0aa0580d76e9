package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/habitrow/habitctl/internal/config"
	"github.com/habitrow/habitctl/internal/habits"
	"github.com/habitrow/habitctl/internal/output"
)

type CLI struct {
	Create CreateCmd `cmd:"" help:"Create a single habit record"`
	Run    RunCmd    `cmd:"" help:"Create every record due today"`
	Serve  ServeCmd  `cmd:"" help:"Run the built-in scheduler"`
	Config ConfigCmd `cmd:"" help:"Inspect and verify configuration"`

	Version kong.VersionFlag `help:"Show version" name:"version"`
}

// Context carries per-invocation output settings between commands.
type Context struct {
	JSON bool
}

// createdRecord is the JSON shape printed for each created page.
type createdRecord struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	URL   string `json:"url,omitempty"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// resolveDay returns the calendar day the invocation operates on: the
// --date override when given, otherwise the current date in the configured
// time zone.
func resolveDay(cfg config.Config, dateFlag string) (time.Time, error) {
	loc, err := cfg.Location()
	if err != nil {
		return time.Time{}, fmt.Errorf("resolve time zone %q: %w", cfg.Timezone, err)
	}

	if dateFlag == "" {
		return time.Now().In(loc), nil
	}

	day, err := time.ParseInLocation("2006-01-02", dateFlag, loc)
	if err != nil {
		return time.Time{}, &output.UserError{Message: fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", dateFlag)}
	}
	return day, nil
}

func printCreated(ctx *Context, created []habits.Created, day time.Time) error {
	if ctx.JSON {
		records := make([]createdRecord, 0, len(created))
		for _, c := range created {
			records = append(records, createdRecord{
				Type:  c.Type.String(),
				ID:    c.Page.ID,
				URL:   c.Page.URL,
				Title: c.Type.Title(day),
				Date:  day.Format("2006-01-02"),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, c := range created {
		output.PrintSuccess(fmt.Sprintf("Created %s record: %s", c.Type, c.Page.ID))
		if c.Page.URL != "" {
			output.PrintInfo(c.Page.URL)
		}
	}
	return nil
}

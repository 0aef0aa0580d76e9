// Package habits builds and submits habit record pages for the daily,
// weekly, and monthly tracker databases.
package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/habitrow/habitctl/internal/config"
)

// RecordType selects which tracker database a record is created in.
type RecordType string

const (
	Daily   RecordType = "daily"
	Weekly  RecordType = "weekly"
	Monthly RecordType = "monthly"
)

const (
	titleDateLayout = "Jan 02, 2006"
	isoDateLayout   = "2006-01-02"
)

func ParseRecordType(s string) (RecordType, error) {
	switch RecordType(strings.ToLower(strings.TrimSpace(s))) {
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	default:
		return "", fmt.Errorf("unknown record type %q (expected daily, weekly, or monthly)", s)
	}
}

func (t RecordType) String() string {
	return string(t)
}

func (t RecordType) titlePrefix() string {
	switch t {
	case Daily:
		return "Daily Habits:"
	case Weekly:
		return "Week:"
	case Monthly:
		return "Month:"
	default:
		return ""
	}
}

// Title returns the record title for the given calendar day, e.g.
// "Daily Habits: Mar 05, 2025".
func (t RecordType) Title(day time.Time) string {
	return t.titlePrefix() + " " + day.Format(titleDateLayout)
}

// pagePayload builds the POST /pages body for a habit record. priorPageID
// is empty for everything but weekly records.
func pagePayload(databaseID string, t RecordType, day time.Time, props config.PropertiesConfig, summaryPageID, priorPageID string) map[string]any {
	properties := map[string]any{
		props.Title: map[string]any{
			"title": []map[string]any{
				{
					"text": map[string]any{
						"content": t.Title(day),
					},
				},
			},
		},
		props.Date: map[string]any{
			"date": map[string]any{
				"start": day.Format(isoDateLayout),
			},
		},
		props.Analytics: map[string]any{
			"relation": []map[string]any{
				{"id": summaryPageID},
			},
		},
	}

	if priorPageID != "" {
		properties[props.PriorWeek] = map[string]any{
			"relation": []map[string]any{
				{"id": priorPageID},
			},
		}
	}

	return map[string]any{
		"parent": map[string]any{
			"database_id": databaseID,
		},
		"properties": properties,
	}
}

// latestPageQuery builds the query body that returns the single
// most-recently-dated page in a database.
func latestPageQuery(dateProperty string) map[string]any {
	return map[string]any{
		"page_size": 1,
		"sorts": []map[string]any{
			{
				"property":  dateProperty,
				"direction": "descending",
			},
		},
	}
}

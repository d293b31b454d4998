package models

import (
	"log"
	"time"
)

// Defaults substituted for missing or empty raw fields.
const (
	DefaultTitle       = "Untitled Issue"
	DefaultDescription = "No description provided"
	DefaultReportedBy  = "anonymous"
	DefaultDuration    = "Unknown"
)

// Normalize maps one raw store record into a canonical Issue. Raw
// records come from more than one writer and disagree on shape, so
// every field is treated as optional here and nowhere else. Pure
// except for a log line when a timestamp fails to parse.
func Normalize(id string, raw map[string]any) Issue {
	issue := Issue{
		ID:          id,
		Title:       stringField(raw, "title", DefaultTitle),
		Description: stringField(raw, "description", DefaultDescription),
		Category:    Other,
		Status:      Reported,
		Priority:    Medium,
		ReportedBy:  stringField(raw, "reportedBy", DefaultReportedBy),
		Duration:    stringField(raw, "duration", DefaultDuration),
		Images:      []string{},
		Comments:    []IssueComment{},
	}

	if c := stringField(raw, "category", ""); ValidCategory(c) {
		issue.Category = IssueCategory(c)
	}
	if s := stringField(raw, "status", ""); ValidStatus(s) {
		issue.Status = IssueStatus(s)
	}
	if p := stringField(raw, "priority", ""); ValidPriority(p) {
		issue.Priority = IssuePriority(p)
	}

	issue.Location = normalizeLocation(raw["location"])
	issue.ReportedAt = parseTimestamp(id, raw["timestamp"])
	issue.Upvotes = intField(raw, "upvotes")

	if img := stringField(raw, "image", ""); img != "" {
		issue.Images = []string{img}
	}
	if imgs, ok := raw["images"].([]any); ok {
		for _, v := range imgs {
			if s, ok := v.(string); ok && s != "" {
				issue.Images = append(issue.Images, s)
			}
		}
	}

	return issue
}

// normalizeLocation accepts both observed shapes: the flat address
// string (administrative fields inferred) and the structured map
// (fields taken as written, defaulted individually).
func normalizeLocation(v any) GeoLocation {
	switch loc := v.(type) {
	case string:
		if loc == "" {
			return GeoLocation{Address: "Unknown location", State: UnknownState}
		}
		return InferLocation(loc)
	case map[string]any:
		out := GeoLocation{
			Address:  stringField(loc, "address", "Unknown location"),
			State:    stringField(loc, "state", UnknownState),
			District: stringField(loc, "district", ""),
			City:     stringField(loc, "city", ""),
			Village:  stringField(loc, "village", ""),
			Pincode:  stringField(loc, "pincode", ""),
		}
		if out.State == "" {
			out.State = UnknownState
		}
		return out
	default:
		return GeoLocation{Address: "Unknown location", State: UnknownState}
	}
}

// parseTimestamp falls back to the current time on a missing or
// unparseable value. The fallback hides bad source data, so it is
// logged.
func parseTimestamp(id string, v any) time.Time {
	switch ts := v.(type) {
	case time.Time:
		return ts
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, ts); err == nil {
				return t
			}
		}
		log.Printf("issue %s: unparseable timestamp %q, using current time", id, ts)
	case nil:
	default:
		log.Printf("issue %s: unexpected timestamp type %T, using current time", id, v)
	}
	return time.Now()
}

func stringField(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// intField tolerates the numeric types the store driver may decode a
// counter into. Negative values clamp to zero.
func intField(m map[string]any, key string) int {
	var n int
	switch v := m[key].(type) {
	case int:
		n = v
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case float64:
		n = int(v)
	}
	if n < 0 {
		return 0
	}
	return n
}

package output

import (
	"fmt"
	"strings"
)

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

// formatText renders the human-readable summary_<ts>.txt body.
func formatText(d document) string {
	summary := d.Summary
	if summary == "" {
		summary = "No summary available"
	}

	lines := []string{
		heavyRule,
		"MEETING SUMMARY: " + d.Title,
		heavyRule,
		"",
		"Date/Time: " + d.Timestamp,
		fmt.Sprintf("Duration: %.1f minutes", d.Duration),
		"",
	}

	lines = append(lines, section("EXECUTIVE SUMMARY")...)
	lines = append(lines, summary, "")

	lines = append(lines, section("KEY TOPICS")...)
	for i, topic := range d.Topics {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, topic))
	}
	lines = append(lines, "")

	lines = append(lines, section("DECISIONS")...)
	for i, decision := range d.Decisions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, decision))
	}
	lines = append(lines, "")

	lines = append(lines, section("ACTION ITEMS")...)
	if len(d.ActionItems) == 0 {
		lines = append(lines, "No action items identified.")
	}
	for i, item := range d.ActionItems {
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, item.Task),
			"   Owner: "+item.Owner,
			"   Deadline: "+item.Deadline,
			"",
		)
	}

	lines = append(lines, heavyRule, "Generated by: meeting-digest", heavyRule)
	return strings.Join(lines, "\n")
}

func section(title string) []string {
	return []string{lightRule, title, lightRule}
}

package summarizer

import "strings"

// ParseBullets keeps lines starting with "-" or "•", strips the marker and returns
// at most limit entries. A limit <= 0 means no cap.
func ParseBullets(response string, limit int) []string {
	items := []string{}
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "•") {
			continue
		}
		items = append(items, strings.TrimSpace(strings.Trim(line, "- •")))
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items
}

type actionState int

const (
	noItem actionState = iota
	buildingItem
)

// actionParser is a two-state machine over the lines of an action item response.
type actionParser struct {
	state   actionState
	current ActionItem
	items   []ActionItem
}

func (p *actionParser) line(line string) {
	switch {
	case strings.HasPrefix(line, "Task:"):
		p.finalize()
		p.current = ActionItem{Task: strings.TrimSpace(strings.TrimPrefix(line, "Task:"))}
		p.state = buildingItem
	case p.state == noItem:
	case strings.HasPrefix(line, "Owner:"):
		p.current.Owner = strings.TrimSpace(strings.TrimPrefix(line, "Owner:"))
	case strings.HasPrefix(line, "Deadline:"):
		p.current.Deadline = strings.TrimSpace(strings.TrimPrefix(line, "Deadline:"))
	case line == "---":
		p.finalize()
	}
}

func (p *actionParser) finalize() {
	if p.state != buildingItem {
		return
	}
	item := p.current
	if item.Owner == "" {
		item.Owner = "TBD"
	}
	if item.Deadline == "" {
		item.Deadline = "TBD"
	}
	p.items = append(p.items, item)
	p.current = ActionItem{}
	p.state = noItem
}

// ParseActionItems reads "Task:", "Owner:" and "Deadline:" blocks separated by "---".
// Missing owner and deadline become "TBD". A limit <= 0 means no cap.
func ParseActionItems(response string, limit int) []ActionItem {
	p := &actionParser{items: []ActionItem{}}
	for _, line := range strings.Split(response, "\n") {
		p.line(strings.TrimSpace(line))
	}
	p.finalize()

	if limit > 0 && len(p.items) > limit {
		return p.items[:limit]
	}
	return p.items
}

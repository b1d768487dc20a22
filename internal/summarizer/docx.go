package summarizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// Models sometimes answer with markdown emphasis.
var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Document is everything rendered into a DOCX summary.
type Document struct {
	Title      string
	Date       string
	Summary    *Summary
	Transcript string // optional, "[MM:SS] text" lines
}

// WriteDocx renders doc as a styled Word document at path.
func WriteDocx(doc Document, path string) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(d.AddParagraph(""), doc.Title, true, 16)
	if doc.Date != "" {
		addStyledRun(d.AddParagraph(""), "Date: "+doc.Date, false, fontSize)
	}

	s := doc.Summary
	addHeading(d.AddParagraph(""), "Executive Summary")
	addText(d.AddParagraph(""), s.Summary)

	addHeading(d.AddParagraph(""), "Key Topics")
	for _, topic := range s.Topics {
		addText(d.AddParagraph(""), "• "+topic)
	}

	addHeading(d.AddParagraph(""), "Decisions Made")
	for _, decision := range s.Decisions {
		addText(d.AddParagraph(""), "• "+decision)
	}

	addHeading(d.AddParagraph(""), "Action Items")
	for i, item := range s.ActionItems {
		p := d.AddParagraph("")
		addStyledRun(p, fmt.Sprintf("%d. %s", i+1, item.Task), true, fontSize)
		addText(d.AddParagraph(""), "   Owner: "+item.Owner)
		addText(d.AddParagraph(""), "   Deadline: "+item.Deadline)
	}

	if strings.TrimSpace(doc.Transcript) != "" {
		addHeading(d.AddParagraph(""), "Transcript")
		for _, line := range strings.Split(doc.Transcript, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				addText(d.AddParagraph(""), line)
			}
		}
	}

	return d.SaveTo(path)
}

func addHeading(p *docx.Paragraph, text string) {
	addStyledRun(p, text, true, 15)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addText renders **bold** spans as bold runs and drops other inline markup.
func addText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}

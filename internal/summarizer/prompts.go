package summarizer

import "fmt"

// Output budgets per request, in tokens.
const (
	summaryMaxTokens   = 512
	topicsMaxTokens    = 256
	decisionsMaxTokens = 256
	actionsMaxTokens   = 512
)

var lengthHints = map[string]string{
	"short":  "100 words",
	"medium": "200 words",
	"long":   "500 words",
}

const summaryPrompt = `You are an expert meeting summarizer. Read the following meeting transcript and provide a clear, concise executive summary in %s.

The summary should capture:
- Main topics discussed
- Key decisions made
- Overall outcome of the meeting

Meeting Transcript:
%s

Executive Summary:`

const topicsPrompt = `Extract the main topics discussed in this meeting transcript. Return one topic per line as a bullet list.

Format:
- Topic 1
- Topic 2
- Topic 3

Transcript:
%s

Topics:`

const decisionsPrompt = `Extract all decisions made in this meeting. Format as bullet points.

Transcript:
%s

Decisions made:`

const actionItemsPrompt = `Extract all action items from this meeting. For each action item, identify:
1. The task/action
2. The person responsible (owner)
3. The deadline (if mentioned, otherwise say "TBD")

Format each as:
Task: [task description]
Owner: [person name or "TBD"]
Deadline: [date or "TBD"]
---

Transcript:
%s

Action Items:`

func buildSummaryPrompt(window, length string) string {
	hint, ok := lengthHints[length]
	if !ok {
		hint = lengthHints["medium"]
	}
	return fmt.Sprintf(summaryPrompt, hint, window)
}

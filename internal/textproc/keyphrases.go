package textproc

import (
	"strings"
	"unicode/utf8"
)

const maxKeyPhrases = 20

var commonWords = map[string]struct{}{
	"about": {}, "there": {}, "their": {}, "would": {},
	"could": {}, "should": {}, "think": {}, "really": {},
}

func (p *implProcessor) KeyPhrases(text string) []string {
	seen := make(map[string]struct{})
	phrases := make([]string, 0, maxKeyPhrases)

	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) <= 5 {
			continue
		}
		key := strings.ToLower(w)
		if _, ok := commonWords[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		phrases = append(phrases, w)
		if len(phrases) == maxKeyPhrases {
			break
		}
	}
	return phrases
}

package tasks

import (
	"regexp"
	"strings"
)

var (
	reSentenceEnd = regexp.MustCompile(`[.!?]+`)

	// Substring search, so "finish" also hits "finishing".
	reTaskSignal = regexp.MustCompile(`(?i)` + strings.Join([]string{
		`need to`,
		`should`,
		`must`,
		`have to`,
		`will`,
		`going to`,
		`action item`,
		`todo`,
		`task`,
		`follow up`,
		`reach out`,
		`contact`,
		`schedule`,
		`prepare`,
		`create`,
		`send`,
		`review`,
		`complete`,
		`finish`,
	}, `|`))

	// Evaluated in order, first match wins.
	deadlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)by (\w+day|\w+\s+\d{1,2})`),
		regexp.MustCompile(`(?i)before (\w+day|\w+\s+\d{1,2})`),
		regexp.MustCompile(`(?i)deadline[:\s]+(\w+)`),
		regexp.MustCompile(`(?i)due[:\s]+(\w+)`),
	}

	// Also matches sentence-initial words such as "We" or "The".
	reName = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)

	highPriorityKeywords = []string{"urgent", "asap", "critical", "important", "priority", "immediately"}
	lowPriorityKeywords  = []string{"when possible", "eventually", "nice to have", "optional"}
)

// Extract scans transcript text for action items. Sentences are kept in
// order of appearance unless more than MaxTasks qualify, in which case all
// high priority tasks come first followed by the earliest remaining ones.
// The result is never nil.
func Extract(text string) []Task {
	found := []Task{}

	for _, sentence := range splitSentences(text) {
		if !reTaskSignal.MatchString(sentence) {
			continue
		}

		found = append(found, Task{
			Description: sentence,
			AssignedTo:  extractAssignee(sentence),
			Deadline:    extractDeadline(sentence),
			Priority:    classifyPriority(sentence),
		})
	}

	return limit(found)
}

// splitSentences splits on runs of sentence terminators and drops blank segments.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range reSentenceEnd.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sentences = append(sentences, part)
	}
	return sentences
}

func extractDeadline(sentence string) string {
	for _, re := range deadlinePatterns {
		if m := re.FindStringSubmatch(sentence); m != nil {
			return m[1]
		}
	}
	return NoDeadline
}

func extractAssignee(sentence string) string {
	if m := reName.FindStringSubmatch(sentence); m != nil {
		return m[1]
	}
	return Unassigned
}

func classifyPriority(sentence string) Priority {
	lower := strings.ToLower(sentence)
	if containsAny(lower, highPriorityKeywords) {
		return PriorityHigh
	}
	if containsAny(lower, lowPriorityKeywords) {
		return PriorityLow
	}
	return PriorityMedium
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// limit keeps every high priority task and fills the remaining slots with
// the other tasks in their original order. Below the cap nothing moves.
func limit(found []Task) []Task {
	if len(found) <= MaxTasks {
		return found
	}

	var high, other []Task
	for _, t := range found {
		if t.Priority == PriorityHigh {
			high = append(high, t)
		} else {
			other = append(other, t)
		}
	}

	room := max(MaxTasks-len(high), 0)
	if room < len(other) {
		other = other[:room]
	}

	out := make([]Task, 0, len(high)+len(other))
	out = append(out, high...)
	return append(out, other...)
}

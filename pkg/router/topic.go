package router

import "strings"

// maxTopicNameLength caps auto-created forum topic names.
const maxTopicNameLength = 32

// TopicNameFromText derives a forum topic name from a message: the first
// line, cut at a word boundary within the length cap.
func TopicNameFromText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "New topic"
	}
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = strings.TrimSpace(text[:nl])
	}
	if len(text) <= maxTopicNameLength {
		return text
	}

	cut := strings.LastIndexByte(text[:maxTopicNameLength], ' ')
	if cut <= 0 {
		cut = maxTopicNameLength
	}
	return strings.TrimSpace(text[:cut])
}

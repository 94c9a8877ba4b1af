package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters in a task title after trimming.
const MaxTitleLength = 255

// Task represents a single to-do item.
// ID and CreatedAt are assigned by the store; Completed only moves from false to true.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NormalizeTaskInput trims the title and description of a new task and checks
// the title rules. The length limit applies to the trimmed title and counts
// characters, not bytes.
func NormalizeTaskInput(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return "", "", ErrTitleRequired
	}

	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", "", ErrTitleTooLong
	}

	return title, description, nil
}

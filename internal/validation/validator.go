package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// Column widths from the migrations
const (
	maxSlugLen        = 50
	maxDescriptionLen = 255
	maxNameLen        = 255
	maxAvatarLen      = 1000
	maxTitleLen       = 255
)

// ValidationError represents a single validation error in a fixture record
type ValidationError struct {
	Table   string `json:"table"`
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s record %d: %s: %s (%v)", e.Table, e.Line, e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s record %d: %s: %s", e.Table, e.Line, e.Field, e.Message)
}

// Validator checks fixture records before they are loaded. It remembers
// the keys of accepted topics, users and articles so that later records
// can be checked against them; records must therefore be validated in
// foreign key order.
type Validator struct {
	topicCache   map[string]bool
	userCache    map[string]bool
	articleCount int
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		topicCache: make(map[string]bool),
		userCache:  make(map[string]bool),
	}
}

// AddTopic adds a slug to the topic cache
func (v *Validator) AddTopic(slug string) {
	v.topicCache[slug] = true
}

// AddUser adds a username to the user cache
func (v *Validator) AddUser(username string) {
	v.userCache[username] = true
}

// AddArticle counts one more article comments may reference
func (v *Validator) AddArticle() {
	v.articleCount++
}

// ValidateTopic validates a topic record
func (v *Validator) ValidateTopic(rec map[string]any, line int) []ValidationError {
	var errors []ValidationError
	fail := collector("topics", line, &errors)

	if slug, ok := requiredString(rec, "slug", fail); ok {
		switch {
		case utf8.RuneCountInString(slug) > maxSlugLen:
			fail("slug", fmt.Sprintf("slug exceeds %d characters", maxSlugLen), slug)
		case !slugRegex.MatchString(slug):
			fail("slug", "slug must be lowercase letters, numbers, hyphens or underscores", slug)
		case v.topicCache[slug]:
			fail("slug", "duplicate slug", slug)
		}
	}
	if desc, ok := requiredString(rec, "description", fail); ok && utf8.RuneCountInString(desc) > maxDescriptionLen {
		fail("description", fmt.Sprintf("description exceeds %d characters", maxDescriptionLen), nil)
	}

	return errors
}

// ValidateUser validates a user record
func (v *Validator) ValidateUser(rec map[string]any, line int) []ValidationError {
	var errors []ValidationError
	fail := collector("users", line, &errors)

	if username, ok := requiredString(rec, "username", fail); ok {
		switch {
		case !usernameRegex.MatchString(username):
			fail("username", "username may only contain letters, numbers, '.', '_' and '-'", username)
		case v.userCache[username]:
			fail("username", "duplicate username", username)
		}
	}
	if name, ok := requiredString(rec, "name", fail); ok && utf8.RuneCountInString(name) > maxNameLen {
		fail("name", fmt.Sprintf("name exceeds %d characters", maxNameLen), nil)
	}

	// avatar_url is optional
	if raw, present := rec["avatar_url"]; present && raw != nil {
		avatar, isString := raw.(string)
		switch {
		case !isString:
			fail("avatar_url", "avatar_url must be a string", raw)
		case len(avatar) > maxAvatarLen:
			fail("avatar_url", fmt.Sprintf("avatar_url exceeds %d characters", maxAvatarLen), nil)
		case !isValidURL(avatar):
			fail("avatar_url", "invalid URL", avatar)
		}
	}

	return errors
}

// ValidateArticle validates an article record
func (v *Validator) ValidateArticle(rec map[string]any, line int) []ValidationError {
	var errors []ValidationError
	fail := collector("articles", line, &errors)

	if title, ok := requiredString(rec, "title", fail); ok && utf8.RuneCountInString(title) > maxTitleLen {
		fail("title", fmt.Sprintf("title exceeds %d characters", maxTitleLen), nil)
	}
	requiredString(rec, "body", fail)

	// Validate topic (FK)
	if topic, ok := requiredString(rec, "topic", fail); ok && !v.topicCache[topic] {
		fail("topic", "referenced topic does not exist", topic)
	}

	// Validate author (FK)
	if author, ok := requiredString(rec, "author", fail); ok && !v.userCache[author] {
		fail("author", "referenced user does not exist", author)
	}

	optionalInt(rec, "votes", fail)
	requiredTimestamp(rec, "created_at", fail)

	return errors
}

// ValidateComment validates a comment record. article_id is the 1-based
// position of the article within the same dataset.
func (v *Validator) ValidateComment(rec map[string]any, line int) []ValidationError {
	var errors []ValidationError
	fail := collector("comments", line, &errors)

	requiredString(rec, "body", fail)

	// Validate author (FK)
	if author, ok := requiredString(rec, "author", fail); ok && !v.userCache[author] {
		fail("author", "referenced user does not exist", author)
	}

	// Validate article_id (FK)
	if raw, present := rec["article_id"]; !present || raw == nil {
		fail("article_id", "article_id is required", nil)
	} else if idx, ok := raw.(int); !ok {
		fail("article_id", "article_id must be an integer", raw)
	} else if idx < 1 || idx > v.articleCount {
		fail("article_id", fmt.Sprintf("referenced article does not exist (dataset has %d)", v.articleCount), idx)
	}

	optionalInt(rec, "votes", fail)
	requiredTimestamp(rec, "created_at", fail)

	return errors
}

type failFunc func(field, message string, value any)

func collector(table string, line int, errors *[]ValidationError) failFunc {
	return func(field, message string, value any) {
		*errors = append(*errors, ValidationError{
			Table:   table,
			Line:    line,
			Field:   field,
			Message: message,
			Value:   value,
		})
	}
}

func requiredString(rec map[string]any, field string, fail failFunc) (string, bool) {
	raw, present := rec[field]
	if !present || raw == nil {
		fail(field, field+" is required", nil)
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		fail(field, field+" must be a string", raw)
		return "", false
	}
	if strings.TrimSpace(s) == "" {
		fail(field, field+" is required", nil)
		return "", false
	}
	return s, true
}

func optionalInt(rec map[string]any, field string, fail failFunc) {
	if raw, present := rec[field]; present && raw != nil {
		if _, ok := raw.(int); !ok {
			fail(field, field+" must be an integer", raw)
		}
	}
}

// requiredTimestamp accepts epoch milliseconds or an already converted time
func requiredTimestamp(rec map[string]any, field string, fail failFunc) {
	raw, present := rec[field]
	if !present || raw == nil {
		fail(field, field+" is required", nil)
		return
	}
	switch raw.(type) {
	case int, time.Time:
	default:
		fail(field, field+" must be epoch milliseconds", raw)
	}
}

// isValidURL checks for an absolute http(s) URL
func isValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

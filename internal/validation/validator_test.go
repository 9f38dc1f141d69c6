package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fields(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateTopic(t *testing.T) {
	validator := NewValidator()
	validator.AddTopic("mitch")

	tests := []struct {
		name       string
		rec        map[string]any
		wantFields []string
	}{
		{"valid topic", map[string]any{"slug": "cats", "description": "Not dogs"}, nil},
		{"underscore slug", map[string]any{"slug": "big_cats", "description": "Roar"}, nil},
		{"missing slug", map[string]any{"description": "Not dogs"}, []string{"slug"}},
		{"blank description", map[string]any{"slug": "cats", "description": "  "}, []string{"description"}},
		{"uppercase slug", map[string]any{"slug": "Cats", "description": "d"}, []string{"slug"}},
		{"duplicate slug", map[string]any{"slug": "mitch", "description": "d"}, []string{"slug"}},
		{"long slug", map[string]any{"slug": strings.Repeat("a", 51), "description": "d"}, []string{"slug"}},
		{"non-string description", map[string]any{"slug": "cats", "description": 7}, []string{"description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidateTopic(tt.rec, 1)
			if tt.wantFields == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantFields, fields(errs))
			assert.Equal(t, "topics", errs[0].Table)
		})
	}
}

func TestValidateUser(t *testing.T) {
	validator := NewValidator()
	validator.AddUser("butter_bridge")

	tests := []struct {
		name       string
		rec        map[string]any
		wantFields []string
	}{
		{"valid user", map[string]any{"username": "lurker", "name": "do_nothing", "avatar_url": "https://example.com/a.png"}, nil},
		{"no avatar", map[string]any{"username": "lurker", "name": "do_nothing"}, nil},
		{"null avatar", map[string]any{"username": "lurker", "name": "do_nothing", "avatar_url": nil}, nil},
		{"duplicate username", map[string]any{"username": "butter_bridge", "name": "jonny"}, []string{"username"}},
		{"spaces in username", map[string]any{"username": "butter bridge", "name": "jonny"}, []string{"username"}},
		{"relative avatar", map[string]any{"username": "x", "name": "y", "avatar_url": "/img.png"}, []string{"avatar_url"}},
		{"missing everything", map[string]any{}, []string{"username", "name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidateUser(tt.rec, 3)
			if tt.wantFields == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantFields, fields(errs))
			assert.Equal(t, 3, errs[0].Line)
		})
	}
}

func TestValidateArticle(t *testing.T) {
	validator := NewValidator()
	validator.AddTopic("mitch")
	validator.AddUser("lurker")

	valid := func() map[string]any {
		return map[string]any{"title": "t", "body": "b", "topic": "mitch", "author": "lurker", "created_at": 1594329060000}
	}

	assert.Empty(t, validator.ValidateArticle(valid(), 1))

	rec := valid()
	rec["created_at"] = time.Now()
	rec["votes"] = 100
	assert.Empty(t, validator.ValidateArticle(rec, 1))

	rec = valid()
	rec["topic"] = "dogs"
	rec["author"] = "ghost"
	assert.Equal(t, []string{"topic", "author"}, fields(validator.ValidateArticle(rec, 1)))

	rec = valid()
	rec["votes"] = 1.5
	rec["created_at"] = "2020-07-09"
	assert.Equal(t, []string{"votes", "created_at"}, fields(validator.ValidateArticle(rec, 1)))

	rec = valid()
	rec["title"] = strings.Repeat("x", 256)
	assert.Equal(t, []string{"title"}, fields(validator.ValidateArticle(rec, 1)))
}

func TestValidateComment(t *testing.T) {
	validator := NewValidator()
	validator.AddUser("lurker")
	validator.AddArticle()
	validator.AddArticle()

	rec := map[string]any{"body": "c", "author": "lurker", "article_id": 2, "created_at": 0}
	assert.Empty(t, validator.ValidateComment(rec, 1))

	for _, idx := range []any{0, 3, "1", nil} {
		rec["article_id"] = idx
		errs := validator.ValidateComment(rec, 1)
		assert.Equal(t, []string{"article_id"}, fields(errs), "article_id %v", idx)
	}
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Table: "users", Line: 2, Field: "username", Message: "duplicate username", Value: "lurker"}
	assert.Equal(t, "users record 2: username: duplicate username (lurker)", e.Error())

	e.Value = nil
	assert.Equal(t, "users record 2: username: duplicate username", e.Error())
}

// Package apperr carries the status/message pair every domain failure is
// reported with. The HTTP layer renders it; nothing below it knows about
// transport.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain failure with the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// New creates an Error with an arbitrary status
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest creates a 400 Error
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound creates a 404 Error
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict creates a 409 Error
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Unprocessable creates a 422 Error
func Unprocessable(message string) *Error {
	return New(http.StatusUnprocessableEntity, message)
}

// As extracts an *Error from err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Messages shared between the service layer and its tests.
const (
	MsgArticleIDNotNumber  = "Bad request - article_id must be a number"
	MsgCommentIDNotNumber  = "Bad request - comment_id must be a number"
	MsgArticleNotFound     = "Not found - there is not an article with selected article_id"
	MsgCommentNotFound     = "Not found - there is not a comment with selected comment_id"
	MsgArticleDoesNotExist = "Article does not exist"
	MsgCommentDoesNotExist = "Comment does not exist"
	MsgUnprocessableBody   = "Unprocessable Entity, error in request body"
	MsgUnknownSortColumn   = "Bad request - cannot sort by unknown column"
	MsgInvalidOrder        = "Bad request - order should be asc or desc"
	MsgInvalidQuery        = "Bad request - invalid query"
	MsgMissingFields       = "Bad request - missing required fields"
	MsgInvalidInput        = "Invalid input"
	MsgNotFound            = "Not found"
	MsgUserNotFound        = "User not found"
	MsgArticleRefNotFound  = "Article not found"
	MsgTopicNotFound       = "Topic not found"
	MsgTopicExists         = "Topic already exists"
)

package seed

import (
	"fmt"
	"strings"

	"github.com/news-api/internal/validation"
)

// maxReportedErrors caps the messages folded into DatasetError.Error
const maxReportedErrors = 10

// DatasetError lists every invalid record of a dataset
type DatasetError struct {
	Errors []validation.ValidationError
}

func (e *DatasetError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dataset has %d invalid field(s)", len(e.Errors))
	for i, ve := range e.Errors {
		if i == maxReportedErrors {
			fmt.Fprintf(&b, "; and %d more", len(e.Errors)-i)
			break
		}
		b.WriteString("; ")
		b.WriteString(ve.Error())
	}
	return b.String()
}

// Validate checks every record of the dataset in foreign key order and
// returns a *DatasetError when any is invalid. Line numbers are 1-based
// positions within each table's records.
func Validate(ds *Dataset) error {
	v := validation.NewValidator()
	var errs []validation.ValidationError

	for i, rec := range ds.Topics {
		e := v.ValidateTopic(rec, i+1)
		if len(e) == 0 {
			v.AddTopic(rec["slug"].(string))
		}
		errs = append(errs, e...)
	}
	for i, rec := range ds.Users {
		e := v.ValidateUser(rec, i+1)
		if len(e) == 0 {
			v.AddUser(rec["username"].(string))
		}
		errs = append(errs, e...)
	}
	for i, rec := range ds.Articles {
		errs = append(errs, v.ValidateArticle(rec, i+1)...)
		// positions stay stable even when an article is rejected
		v.AddArticle()
	}
	for i, rec := range ds.Comments {
		errs = append(errs, v.ValidateComment(rec, i+1)...)
	}

	if len(errs) > 0 {
		return &DatasetError{Errors: errs}
	}
	return nil
}

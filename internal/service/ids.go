package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/repository"
)

// parseID converts a path id. Anything that is not a base-10 integer is
// rejected with msg. Integers outside the INT column range are mapped to 0,
// which no SERIAL row carries, so they fall through to the not-found path.
func parseID(raw, msg string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, nil
		}
		return 0, apperr.BadRequest(msg)
	}
	return int(n), nil
}

// mustExist returns notFound when the keyed row is absent
func mustExist(ctx context.Context, exists repository.ExistenceChecker, entity repository.Entity, column string, value any, notFound string) error {
	ok, err := exists.Exists(ctx, entity, column, value)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", entity, err)
	}
	if !ok {
		return apperr.NotFound(notFound)
	}
	return nil
}

// requestError reports a failed DTO validation. A missing field wins over
// any other broken rule.
func requestError(err error) error {
	var errs validation.Errors
	if errors.As(err, &errs) {
		for _, fieldErr := range errs {
			var ve validation.Error
			if errors.As(fieldErr, &ve) && ve.Code() == validation.ErrRequired.Code() {
				return apperr.BadRequest(apperr.MsgMissingFields)
			}
		}
	}
	return apperr.BadRequest(apperr.MsgInvalidInput)
}

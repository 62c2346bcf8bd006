package service

import (
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

// failed prefixes the API error message with the action that failed.
func failed(err error, action string) error {
	de := util.ToDomainError(err)
	return &util.DomainError{
		Code:       de.Code,
		Message:    action + ": " + de.Message,
		HTTPStatus: de.HTTPStatus,
		Err:        err,
	}
}

// upstreamOr surfaces the message sent by the API, or fallback when there was none.
func upstreamOr(err error, fallback string) error {
	de := util.ToDomainError(err)
	msg, ok := util.UpstreamMessage(err)
	if !ok {
		msg = fallback
	}
	return &util.DomainError{Code: de.Code, Message: msg, HTTPStatus: de.HTTPStatus, Err: err}
}

// prefixedOr prefixes the API's message with action, or yields fallback when
// the API sent none.
func prefixedOr(err error, action, fallback string) error {
	de := util.ToDomainError(err)
	msg, ok := util.UpstreamMessage(err)
	if ok {
		msg = action + ": " + msg
	} else {
		msg = fallback
	}
	return &util.DomainError{Code: de.Code, Message: msg, HTTPStatus: de.HTTPStatus, Err: err}
}

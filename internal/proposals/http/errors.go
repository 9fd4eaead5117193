package http

import (
	"errors"
	"net/http"

	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
)

// statusForError maps an exchange failure to the status returned to the app
func statusForError(err error) int {
	var e *domain.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}

	switch e.Kind {
	case domain.KindInvalidEndpoint, domain.KindEncodingFailure:
		return http.StatusInternalServerError
	case domain.KindServerRejected:
		if e.StatusCode >= 400 && e.StatusCode < 500 {
			return e.StatusCode
		}
		return http.StatusBadGateway
	case domain.KindTransportFailure, domain.KindMalformedResponse, domain.KindDecodingFailure:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// messageForError prefers the store's own message for rejections
func messageForError(err error) string {
	var e *domain.Error
	if errors.As(err, &e) && e.Kind == domain.KindServerRejected && e.Message != nil {
		return *e.Message
	}
	return err.Error()
}

func kindForError(err error) string {
	if k := domain.KindOf(err); k != 0 {
		return k.String()
	}
	return ""
}

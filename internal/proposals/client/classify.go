package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/neighborswap/proposal-exchange/internal/proposals/codec"
	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
)

// maxErrorBody bounds how much of a rejection body is read for its message
const maxErrorBody = 64 << 10

type response struct {
	statusCode int
	body       []byte
}

// exchange performs req and classifies the outcome. Transport failure is
// decided first, then the status code. The body of a successful response is
// read only when wantBody is set.
func (c *Client) exchange(ctx context.Context, op string, req *http.Request, wantBody bool) (*response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyDoError(ctx, op, err)
	}
	if resp == nil {
		return nil, domain.NewError(domain.KindMalformedResponse, op, errors.New("transport returned no response"))
	}
	defer resp.Body.Close()

	res := &response{statusCode: resp.StatusCode}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Best effort only: an unreadable or unstructured body leaves the message unset.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return res, domain.NewServerRejected(op, resp.StatusCode, codec.DecodeErrorMessage(body))
	}

	if !wantBody {
		_, _ = io.Copy(io.Discard, resp.Body)
		return res, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, domain.NewError(domain.KindTransportFailure, op, ctxErr)
		}
		return res, domain.NewError(domain.KindMalformedResponse, op, fmt.Errorf("read body: %w", err))
	}
	res.body = body
	return res, nil
}

// classifyDoError separates broken HTTP framing from network failures.
// net/http reports framing problems only through its error text.
func classifyDoError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.NewError(domain.KindTransportFailure, op, err)
	}
	msg := err.Error()
	if strings.Contains(msg, "malformed HTTP") ||
		strings.Contains(msg, "server gave HTTP response to HTTPS client") {
		return domain.NewError(domain.KindMalformedResponse, op, err)
	}
	return domain.NewError(domain.KindTransportFailure, op, err)
}

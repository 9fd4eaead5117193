package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neighborswap/proposal-exchange/internal/proposals/codec"
	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
)

const (
	// DefaultResourcePath is the proposals table on the store's REST interface
	DefaultResourcePath = "/rest/v1/proposals"

	// DefaultTimeout applies only when the caller does not supply a transport
	DefaultTimeout = 30 * time.Second

	OpSubmit = "submit"
	OpList   = "list"
)

// Doer performs a single HTTP exchange. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client exchanges pickup proposals with the remote store. It keeps no state
// between calls and is safe for concurrent use.
type Client struct {
	baseURL      string
	resourcePath string
	httpClient   Doer
	hook         Hook
}

type Option func(*Client)

// WithHTTPClient sets the transport, and with it any timeout policy
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithHook sets the observability callback invoked once per call
func WithHook(h Hook) Option {
	return func(c *Client) {
		c.hook = h
	}
}

// WithResourcePath overrides DefaultResourcePath
func WithResourcePath(p string) Option {
	return func(c *Client) {
		c.resourcePath = p
	}
}

// New creates a client for the store at baseURL. The address is checked per
// call, so a bad one surfaces as an invalid endpoint error.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      baseURL,
		resourcePath: DefaultResourcePath,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit creates a proposal from s. It makes exactly one attempt; a repeated
// call creates a duplicate record.
func (c *Client) Submit(ctx context.Context, s domain.Submission, creds domain.Credentials) (err error) {
	ev := Event{Operation: OpSubmit, Method: http.MethodPost}
	start := time.Now()
	defer func() {
		ev.Duration = time.Since(start)
		ev.Err = err
		c.emit(ctx, ev)
	}()

	endpoint, err := c.endpoint(OpSubmit, nil)
	if err != nil {
		return err
	}
	ev.URL = endpoint

	body, err := codec.MarshalSubmission(s)
	if err != nil {
		return withOp(err, OpSubmit)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.NewError(domain.KindInvalidEndpoint, OpSubmit, fmt.Errorf("create request: %w", err))
	}
	setCredentials(req, creds)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	res, err := c.exchange(ctx, OpSubmit, req, false)
	if res != nil {
		ev.StatusCode = res.statusCode
	}
	return err
}

// List returns the proposals matching f in the order the store sent them.
func (c *Client) List(ctx context.Context, f domain.Filter, creds domain.Credentials) (proposals []domain.Proposal, err error) {
	ev := Event{Operation: OpList, Method: http.MethodGet}
	start := time.Now()
	defer func() {
		ev.Duration = time.Since(start)
		ev.Err = err
		ev.Count = len(proposals)
		c.emit(ctx, ev)
	}()

	endpoint, err := c.endpoint(OpList, codec.EncodeFilterQuery(f))
	if err != nil {
		return nil, err
	}
	ev.URL = endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidEndpoint, OpList, fmt.Errorf("create request: %w", err))
	}
	setCredentials(req, creds)
	req.Header.Set("Accept", "application/json")

	res, err := c.exchange(ctx, OpList, req, true)
	if res != nil {
		ev.StatusCode = res.statusCode
	}
	if err != nil {
		return nil, err
	}

	proposals, err = codec.DecodeProposalList(res.body)
	if err != nil {
		return nil, withOp(err, OpList)
	}
	return proposals, nil
}

// endpoint joins the resource path onto the base address
func (c *Client) endpoint(op string, params []codec.QueryParam) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", domain.NewError(domain.KindInvalidEndpoint, op, fmt.Errorf("parse base URL: %w", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", domain.NewError(domain.KindInvalidEndpoint, op, fmt.Errorf("base URL %q must use http or https", c.baseURL))
	}
	if u.Host == "" {
		return "", domain.NewError(domain.KindInvalidEndpoint, op, fmt.Errorf("base URL %q has no host", c.baseURL))
	}
	if strings.TrimSpace(c.resourcePath) == "" {
		return "", domain.NewError(domain.KindInvalidEndpoint, op, errors.New("empty resource path"))
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(c.resourcePath, "/")
	u.RawPath = ""
	u.RawQuery = codec.RawQuery(params)
	u.Fragment = ""
	return u.String(), nil
}

func setCredentials(req *http.Request, creds domain.Credentials) {
	req.Header.Set("apikey", creds.APIKey)
	req.Header.Set("Authorization", "Bearer "+creds.Token)
}

func (c *Client) emit(ctx context.Context, ev Event) {
	if c.hook != nil {
		c.hook(ctx, ev)
	}
}

// withOp stamps the operation on a codec error
func withOp(err error, op string) error {
	if e, ok := err.(*domain.Error); ok {
		cp := *e
		cp.Op = op
		return &cp
	}
	return err
}

// Package ledgerclient talks to the external ledgers and the rates service over HTTP.
package ledgerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/pkg/errorspkg"
)

// maxErrorBody bounds how much of a failed response is kept in the error message.
const maxErrorBody = 512

// Client is a JSON over HTTP client bound to one service base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do sends in as the JSON body and decodes a successful response into out.
//
// A 404 is reported as notFound when it is set. Every other failure is ErrUpstream.
func (c *Client) do(ctx context.Context, method, path string, in, out any, notFound error) error {
	l := zerolog.Ctx(ctx).With().
		Str("method", method).
		Str("url", c.baseURL+path).
		Logger()

	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		l.Error().Err(err).Send()
		return fmt.Errorf("%w: %v", errorspkg.ErrUpstream, err)
	}
	defer resp.Body.Close()

	l.Debug().
		Int("status_code", resp.StatusCode).
		Str("latency", time.Since(start).String()).
		Msg("ledger call")

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		l.Error().Int("status_code", resp.StatusCode).Str("body", string(msg)).Msg("ledger call failed")

		return fmt.Errorf("%w: %s responded %d", errorspkg.ErrUpstream, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		l.Error().Err(err).Send()
		return fmt.Errorf("%w: %v", errorspkg.ErrUpstream, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		l.Error().Err(err).Send()
		return fmt.Errorf("%w: decode %s: %v", errorspkg.ErrUpstream, path, err)
	}

	return nil
}

func itemPath(collection, id string, suffix ...string) string {
	p := collection + "/" + url.PathEscape(id)

	for _, s := range suffix {
		p += "/" + s
	}

	return p
}

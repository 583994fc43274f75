// Package quote fetches quotes from a quotable-compatible HTTP API.
// Fetch failures never propagate to callers: every failed call yields a fallback quote
// and a single user notice.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/filter"
	"github.com/umputun/qotd/pkg/metrics"
)

//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// failure classes, wrapped into errors reported to the notifier
var (
	ErrNetwork           = errors.New("network failure")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidSelection  = errors.New("invalid selection")
)

// errCritical stops retries for failures a repeated request can't fix
var errCritical = errors.New("critical")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string        { return e.err.Error() }
func (e *criticalError) Unwrap() error        { return e.err }
func (e *criticalError) Is(target error) bool { return target == errCritical }

// tagSeparator joins categories in the tags query parameter, any of them may match
const tagSeparator = "|"

// Notifier reports failures to the user
type Notifier interface {
	Notify(msg string)
}

// Params configures HTTPSource
type Params struct {
	APIURL        string        // base URL of the quote API, /random is appended
	Timeout       time.Duration // per request timeout
	UserAgent     string
	RetryAttempts int // total attempts per fetch, 1 means no retry
	RetryDelay    time.Duration
	MinSelection  int // selections shorter than this are rejected
	MaxSelection  int // selections are cut to this length
	Notifier      Notifier
}

// HTTPSource fetches single quotes from the remote API
type HTTPSource struct {
	apiURL        string
	client        *http.Client
	userAgent     string
	retryAttempts int
	retryDelay    time.Duration
	minSelection  int
	maxSelection  int
	notifier      Notifier
	sanitizer     *bluemonday.Policy
}

// quoteResponse is the payload of the quote API, either a quote or an error
type quoteResponse struct {
	Content       string   `json:"content"`
	Text          string   `json:"text"`
	Author        string   `json:"author"`
	Tags          []string `json:"tags"`
	StatusCode    int      `json:"statusCode"`
	StatusMessage string   `json:"statusMessage"`
	Error         string   `json:"error"`
}

// NewHTTPSource makes a quote source
func NewHTTPSource(p Params) *HTTPSource {
	if p.Timeout == 0 {
		p.Timeout = 10 * time.Second
	}
	if p.RetryAttempts < 1 {
		p.RetryAttempts = 1
	}
	if p.MinSelection == 0 {
		p.MinSelection = 3
	}
	if p.MaxSelection == 0 {
		p.MaxSelection = 25
	}
	if p.UserAgent == "" {
		p.UserAgent = "qotd/1.0"
	}
	return &HTTPSource{
		apiURL:        strings.TrimRight(p.APIURL, "/"),
		client:        &http.Client{Timeout: p.Timeout},
		userAgent:     p.UserAgent,
		retryAttempts: p.RetryAttempts,
		retryDelay:    p.RetryDelay,
		minSelection:  p.MinSelection,
		maxSelection:  p.MaxSelection,
		notifier:      p.Notifier,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// Fetch returns a random quote matching any of the categories. An empty filter, or one holding
// only filter.None, fetches an unconstrained quote. Failures return domain.FallbackQuote.
func (s *HTTPSource) Fetch(ctx context.Context, categories []string) domain.Quote {
	tags := effectiveTags(categories)
	kind := string(domain.QuoteKindRandom)
	if tags != "" {
		kind = string(domain.QuoteKindFiltered)
	}

	q, err := s.fetch(ctx, tags)
	if err != nil {
		s.fail(kind, err)
		return domain.FallbackQuote()
	}
	metrics.FetchDone(kind, false)
	return q
}

// FetchBySelection returns a random quote tagged with the selected text. Selections shorter
// than the minimum short-circuit to domain.TagFallbackQuote without a request.
func (s *HTTPSource) FetchBySelection(ctx context.Context, selection string) domain.Quote {
	kind := string(domain.QuoteKindSelection)
	tag, err := s.selectionTag(selection)
	if err != nil {
		s.fail(kind, err)
		return domain.TagFallbackQuote()
	}

	q, err := s.fetch(ctx, tag)
	if err != nil {
		s.fail(kind, err)
		return domain.TagFallbackQuote()
	}
	metrics.FetchDone(kind, false)
	return q
}

// selectionTag trims and caps the selection
func (s *HTTPSource) selectionTag(selection string) (string, error) {
	if len([]rune(strings.TrimSpace(selection))) < s.minSelection {
		return "", fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidSelection, selection, s.minSelection)
	}
	runes := []rune(selection)
	if len(runes) > s.maxSelection {
		runes = runes[:s.maxSelection]
	}
	return strings.TrimSpace(string(runes)), nil
}

// fail reports the failure once
func (s *HTTPSource) fail(kind string, err error) {
	lgr.Printf("[WARN] failed to fetch %s quote: %v", kind, err)
	metrics.FetchDone(kind, true)
	if s.notifier != nil {
		s.notifier.Notify(err.Error())
	}
}

// fetch requests one quote, retrying transient failures
func (s *HTTPSource) fetch(ctx context.Context, tags string) (domain.Quote, error) {
	reqURL := s.apiURL + "/random"
	if tags != "" {
		reqURL += "?" + url.Values{"tags": {tags}}.Encode()
	}

	var res domain.Quote
	retrier := repeater.NewFixed(s.retryAttempts, s.retryDelay)
	err := retrier.Do(ctx, func() error {
		q, err := s.request(ctx, reqURL)
		if err != nil {
			return err
		}
		res = q
		return nil
	}, errCritical)
	if err != nil {
		return domain.Quote{}, err
	}
	return res, nil
}

// request makes a single call to the API and decodes the payload
func (s *HTTPSource) request(ctx context.Context, reqURL string) (domain.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return domain.Quote{}, &criticalError{err: fmt.Errorf("%w: create request: %w", ErrNetwork, err)}
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%w: fetch %s: %w", ErrNetwork, reqURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%w: read response: %w", ErrNetwork, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.Quote{}, fmt.Errorf("%w: unexpected status code %d", ErrNetwork, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Quote{}, &criticalError{err: fmt.Errorf("%w: unexpected status code %d", ErrMalformedResponse, resp.StatusCode)}
	}

	q, err := s.decode(body)
	if err != nil {
		return domain.Quote{}, &criticalError{err: err}
	}
	return q, nil
}

// decode converts the API payload to a quote. A list payload yields one random element.
func (s *HTTPSource) decode(body []byte) (domain.Quote, error) {
	var qr quoteResponse
	trimmed := bytes.TrimSpace(body)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		var list []quoteResponse
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return domain.Quote{}, fmt.Errorf("%w: decode list: %w", ErrMalformedResponse, err)
		}
		if len(list) == 0 {
			return domain.Quote{}, fmt.Errorf("%w: empty list", ErrMalformedResponse)
		}
		qr = list[rand.IntN(len(list))] //nolint:gosec // no need for crypto rand to pick a quote
	default:
		if err := json.Unmarshal(trimmed, &qr); err != nil {
			return domain.Quote{}, fmt.Errorf("%w: decode: %w", ErrMalformedResponse, err)
		}
	}

	if qr.StatusCode != 0 || qr.Error != "" {
		msg := qr.StatusMessage
		if msg == "" {
			msg = qr.Error
		}
		return domain.Quote{}, fmt.Errorf("%w: status %d %s", ErrMalformedResponse, qr.StatusCode, msg)
	}

	content := qr.Content
	if content == "" {
		content = qr.Text
	}
	content = s.clean(content)
	if content == "" {
		return domain.Quote{}, fmt.Errorf("%w: no quote content", ErrMalformedResponse)
	}

	author := s.clean(qr.Author)
	if author == "" {
		author = "Unknown"
	}

	tags := make([]string, 0, len(qr.Tags))
	for _, t := range qr.Tags {
		if t = s.clean(t); t != "" {
			tags = append(tags, t)
		}
	}
	return domain.Quote{Content: content, Author: author, Tags: tags}, nil
}

// clean strips markup from a remote text field. The strict policy escapes entities,
// they are unescaped back since the result is plain text.
func (s *HTTPSource) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(v)))
}

// effectiveTags joins concrete categories, dropping filter.None and blanks
func effectiveTags(categories []string) string {
	res := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || c == filter.None {
			continue
		}
		res = append(res, c)
	}
	return strings.Join(res, tagSeparator)
}

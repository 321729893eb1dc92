package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/infra"
	"hoster-calendar/internal/infra/converter"
	"hoster-calendar/internal/infra/wire"
	"hoster-calendar/internal/pkg/clock"
	"hoster-calendar/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

const (
	calendarPath    = "/api/calendar"
	blockPath       = "/api/calendar/block"
	reservationPath = "/api/reservations/%s/%s"

	IdempotencyHeader = "Idempotency-Key"
)

// Client talks to the calendar backend over JSON/HTTP. It never retries; a
// failed call is reported to the caller as is.
type Client struct {
	hc              *http.Client
	baseURL         string
	timeout         time.Duration
	mutationTimeout time.Duration
	breaker         *gobreaker.CircuitBreaker
	clock           clock.Clock
	logger          *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, clk clock.Clock, logger *slog.Logger) *Client {
	return NewClientWithHTTP(&http.Client{}, cfg, clk, logger)
}

func NewClientWithHTTP(hc *http.Client, cfg config.UpstreamConfig, clk clock.Clock, logger *slog.Logger) *Client {
	return &Client{
		hc:              hc,
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		timeout:         cfg.Timeout,
		mutationTimeout: cfg.MutationTimeout,
		breaker:         NewBreaker("calendar-upstream", cfg, logger),
		clock:           clk,
		logger:          logger,
	}
}

func (c *Client) FetchCalendar(ctx context.Context) (*calendar.Snapshot, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	var resp wire.CalendarResponse
	if err := c.do(ctx, http.MethodGet, calendarPath, uuid.Nil, nil, &resp); err != nil {
		return nil, err
	}
	return converter.SnapshotToDomain(c.logger, resp, c.clock.Now()), nil
}

func (c *Client) SetBlock(ctx context.Context, req calendar.BlockRequest, key uuid.UUID) ([]calendar.ChannelSyncResult, error) {
	ctx, cancel := withTimeout(ctx, c.mutationTimeout)
	defer cancel()

	var resp wire.BlockResponse
	if err := c.do(ctx, http.MethodPost, blockPath, key, converter.BlockRequestToWire(req), &resp); err != nil {
		return nil, err
	}
	return converter.ChannelResultsToDomain(resp.ChannelResults), nil
}

func (c *Client) AcceptReservation(ctx context.Context, reservationID string, key uuid.UUID) error {
	return c.reservationAction(ctx, reservationID, "accept", key)
}

func (c *Client) RejectReservation(ctx context.Context, reservationID string, key uuid.UUID) error {
	return c.reservationAction(ctx, reservationID, "reject", key)
}

func (c *Client) reservationAction(ctx context.Context, reservationID, action string, key uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, c.mutationTimeout)
	defer cancel()

	path := fmt.Sprintf(reservationPath, url.PathEscape(reservationID), action)
	return c.do(ctx, http.MethodPost, path, key, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, key uuid.UUID, body, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, path, key, body, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, "circuit open for "+method+" "+path, err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, key uuid.UUID, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return infra.WrapUpstreamErr(c.logger, infra.KindDecode, 0, "encode request body", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		if key == uuid.Nil {
			key = uuid.New()
		}
		req.Header.Set(IdempotencyHeader, key.String())
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, method+" "+path, err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, res.StatusCode, "read response "+path, err)
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return infra.WrapUpstreamErr(c.logger, infra.KindNotFound, res.StatusCode, method+" "+path, nil)
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return infra.WrapUpstreamErr(c.logger, infra.KindBadStatus, res.StatusCode, method+" "+path, nil)
	}

	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindDecode, res.StatusCode, "decode "+path, err)
	}
	return nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

package bingxapi

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// TimestampMode selects where request timestamps come from.
type TimestampMode string

const (
	TimestampModeLocal  TimestampMode = "local"
	TimestampModeServer TimestampMode = "server"
)

// ParseTimestampMode parses "local" or "server" (case-insensitive).
func ParseTimestampMode(s string) (TimestampMode, error) {
	switch TimestampMode(strings.ToLower(strings.TrimSpace(s))) {
	case TimestampModeLocal:
		return TimestampModeLocal, nil
	case TimestampModeServer:
		return TimestampModeServer, nil
	}

	return "", &ConfigurationError{Setting: "timestamp mode", Value: s}
}

type clock interface {
	Now() time.Time
}

// wallClock reads the wall clock on every call and never reports a millisecond
// earlier than the last one it returned. A forward step of the system clock is
// followed immediately.
type wallClock struct {
	now  func() time.Time
	last atomic.Int64
}

func newWallClock() *wallClock {
	return &wallClock{now: time.Now}
}

func (c *wallClock) Now() time.Time {
	ms := c.now().UnixMilli()
	for {
		last := c.last.Load()
		if ms <= last {
			return time.UnixMilli(last)
		}
		if c.last.CompareAndSwap(last, ms) {
			return time.UnixMilli(ms)
		}
	}
}

func formatMilliseconds(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// Timestamp returns the millisecond epoch timestamp used for signing, read from the
// local clock or from the server depending on the timestamp mode.
func (c *RestClient) Timestamp(ctx context.Context) (string, error) {
	switch c.timestampMode {
	case TimestampModeLocal:
		return formatMilliseconds(c.clock.Now()), nil

	case TimestampModeServer:
		ts, err := c.ServerTime(ctx)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(ts, 10), nil
	}

	return "", &ConfigurationError{Setting: "timestamp mode", Value: string(c.timestampMode)}
}

// ServerTime queries the server time endpoint of the dialect and returns the server
// reported millisecond timestamp. A response without the time field is returned as
// a *RemoteRejection carrying the raw envelope.
func (c *RestClient) ServerTime(ctx context.Context) (int64, error) {
	req, err := c.NewPublicRequest(ctx, c.dialect.ServerTimeMethod, c.dialect.ServerTimePath, nil)
	if err != nil {
		return 0, err
	}

	apiResponse, err := SendAPIRequest(c, req)
	if err != nil {
		return 0, err
	}

	var ts json.Number
	if err := apiResponse.DecodeData(c.dialect.ServerTimeField, &ts); err != nil {
		return 0, err
	}

	ms, err := ts.Int64()
	if err != nil {
		return 0, apiResponse.rejection("data." + c.dialect.ServerTimeField)
	}

	return ms, nil
}

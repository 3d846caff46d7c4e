package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("unexpected content %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 attempts, got %d", mock.CallCount())
	}
}

func TestRetryRateLimitHonored(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 attempts, got %d", mock.CallCount())
	}
}

func TestRetryInvalidResponseOnlyOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("invalid responses get exactly one retry; got %d attempts", mock.CallCount())
	}
}

func TestNoRetryOnTruncation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("truncation must not retry; got %d attempts", mock.CallCount())
	}
}

func TestNoRetryOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("cancellation must not retry; got %d attempts", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 attempts, got %d", mock.CallCount())
	}
}

package whoisx_test

import (
	"brandintel/pkg/serrors"
	"brandintel/pkg/whois/whoisx"
	"context"
	"errors"
	"testing"
	"time"
)

func TestLookup_HonorsContext(t *testing.T) {
	c := whoisx.New(time.Second, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Lookup(ctx, "example.com")
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
	if !errors.Is(err, serrors.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

package probe_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"brandintel/internal/probe"
	"brandintel/pkg/logger"
	"brandintel/pkg/whois"

	mockdnsx "brandintel/pkg/dnsx/mock"
	mockwhois "brandintel/pkg/whois/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func testOptions() probe.Options {
	return probe.Options{
		Concurrency:   4,
		LookupTimeout: time.Second,
	}
}

func TestCheck_VariantsAndRegisteredSubset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mockwhois.NewMockClient(ctrl)
	r := mockdnsx.NewMockResolver(ctrl)

	created := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	// "ab" has variants "a" (deletion of either char), "b" and "ba";
	// only "ba.com" is registered.
	w.EXPECT().Lookup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d string) (whois.Record, error) {
			if d == "ba.com" {
				return whois.Record{
					Domain:       d,
					Registered:   true,
					CreationDate: &created,
					Registrar:    "Example Registrar",
				}, nil
			}

			return whois.Record{Domain: d}, nil
		},
	).Times(3)

	r.EXPECT().LookupA(gomock.Any(), "ba.com").Return([]string{"192.0.2.10"}, nil)
	r.EXPECT().LookupMX(gomock.Any(), "ba.com").Return([]string{"mx.ba.com."}, nil)
	r.EXPECT().LookupTXT(gomock.Any(), "ba.com").Return([]string{"v=spf1 -all"}, nil)

	p := probe.New(w, r, testOptions())
	res, err := p.Check(context.Background(), "ab.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.OriginalDomain != "ab.com" {
		t.Fatalf("expected original domain ab.com, got %s", res.OriginalDomain)
	}
	if len(res.VariantsChecked) != 3 {
		t.Fatalf("expected 3 variants checked, got %v", res.VariantsChecked)
	}
	if len(res.RegisteredVariants) != 1 {
		t.Fatalf("expected 1 registered variant, got %v", res.RegisteredVariants)
	}

	reg := res.RegisteredVariants[0]
	if reg.Domain != "ba.com" || !reg.Registered {
		t.Fatalf("unexpected registered variant: %+v", reg)
	}
	if reg.Registrar != "Example Registrar" {
		t.Fatalf("expected registrar, got %q", reg.Registrar)
	}
	if reg.CreationDate == nil || !reg.CreationDate.Equal(created) {
		t.Fatalf("expected creation date %v, got %v", created, reg.CreationDate)
	}
	if len(reg.DNS.A) != 1 || len(reg.DNS.MX) != 1 || len(reg.DNS.TXT) != 1 {
		t.Fatalf("expected dns records, got %+v", reg.DNS)
	}
}

func TestCheck_LookupFailureIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mockwhois.NewMockClient(ctrl)
	r := mockdnsx.NewMockResolver(ctrl)

	created := time.Date(2019, 6, 15, 0, 0, 0, 0, time.UTC)

	// one candidate fails hard, one succeeds; the batch must survive and the
	// failing candidate degrades to "not registered"
	w.EXPECT().Lookup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d string) (whois.Record, error) {
			if d == "ba.com" {
				return whois.Record{Domain: d, Registered: true, CreationDate: &created}, nil
			}

			return whois.Record{}, errors.New("whois server unreachable")
		},
	).Times(3)

	r.EXPECT().LookupA(gomock.Any(), "ba.com").Return([]string{"192.0.2.20"}, nil)
	r.EXPECT().LookupMX(gomock.Any(), "ba.com").Return(nil, errors.New("no mx"))
	r.EXPECT().LookupTXT(gomock.Any(), "ba.com").Return([]string{}, nil)

	p := probe.New(w, r, testOptions())
	res, err := p.Check(context.Background(), "ab.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.RegisteredVariants) != 1 {
		t.Fatalf("expected 1 registered variant, got %v", res.RegisteredVariants)
	}
	if res.RegisteredVariants[0].Domain != "ba.com" {
		t.Fatalf("expected ba.com registered, got %s", res.RegisteredVariants[0].Domain)
	}

	// MX failure degrades to an empty list for that type only
	dns := res.RegisteredVariants[0].DNS
	if len(dns.A) != 1 {
		t.Fatalf("expected A records to survive, got %+v", dns)
	}
	if dns.MX == nil || len(dns.MX) != 0 {
		t.Fatalf("expected empty (non-nil) MX records, got %+v", dns.MX)
	}
}

func TestCheck_ShortLabelYieldsEmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mockwhois.NewMockClient(ctrl)
	r := mockdnsx.NewMockResolver(ctrl)
	// no lookups may happen for a one-char label
	w.EXPECT().Lookup(gomock.Any(), gomock.Any()).Times(0)

	p := probe.New(w, r, testOptions())
	res, err := p.Check(context.Background(), "a.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.VariantsChecked) != 0 || len(res.RegisteredVariants) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestCheck_CancelledContextReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mockwhois.NewMockClient(ctrl)
	r := mockdnsx.NewMockResolver(ctrl)
	w.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(whois.Record{}, context.Canceled).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := probe.New(w, r, testOptions())
	if _, err := p.Check(ctx, "example.com"); err == nil {
		t.Fatalf("expected error for cancelled caller context")
	}
}

package services

import (
	"context"
	"testing"

	testLog "github.com/sirupsen/logrus/hooks/test"

	"github.com/addrkit/addrkit/mxcache"
	"github.com/addrkit/addrkit/types"
	"github.com/addrkit/addrkit/validator"
)

type stubResolver struct {
	records []types.MX
	err     error
}

func (s stubResolver) LookupMX(ctx context.Context, domain string) ([]types.MX, error) {
	return s.records, s.err
}

func TestCheckSvcHandleCheckRequest(t *testing.T) {
	logger, _ := testLog.NewNullLogger()

	v, err := validator.New(validator.WithResolver(stubResolver{
		records: []types.MX{{Host: "mx1.example.org", Pref: 10}},
	}))
	if err != nil {
		t.Fatalf("Test setup failed, %s", err)
	}

	svc := NewCheckService(v, logger)

	result, err := svc.HandleCheckRequest(context.Background(), "john@example.org")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if !result.Valid {
		t.Errorf("Expected a valid result, got %+v", result)
	}
}

func TestCacheSvcFlushAndDelete(t *testing.T) {
	logger, _ := testLog.NewNullLogger()

	cache := mxcache.New()
	cache.Set("example.org", []types.MX{{Host: "mx1.example.org", Pref: 10}}, 0)
	cache.Set("example.com", []types.MX{{Host: "mx1.example.com", Pref: 10}}, 0)

	svc := NewCacheService(cache, logger)

	if !svc.Delete("example.com") {
		t.Error("Expected the domain to be present")
	}

	if removed := svc.Flush(); removed != 1 {
		t.Errorf("Expected 1 remaining entry to be flushed, got %d", removed)
	}

	if got := svc.Stats(); got.Size != 0 {
		t.Errorf("Expected an empty cache, got %+v", got)
	}
}

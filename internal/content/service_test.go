package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"atrium_site/internal/adapters/staticdata"
	"atrium_site/internal/content"
	"atrium_site/internal/domain"
	"atrium_site/internal/shared"
)

// ---- fakes ----

// fakeQuerier answers GROQ queries by substring match against canned JSON.
type fakeQuerier struct {
	responses map[string]string // query substring -> result JSON
	failOn    string
	calls     atomic.Int32
}

func (f *fakeQuerier) Query(ctx context.Context, query string, params map[string]any, out any) error {
	f.calls.Add(1)
	if f.failOn != "" && strings.Contains(query, f.failOn) {
		return errors.New("sanity: remote 500")
	}
	for sub, raw := range f.responses {
		if strings.Contains(query, sub) {
			return json.Unmarshal([]byte(raw), out)
		}
	}
	return nil // null result
}

type fakeCache struct {
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// strictCache refuses cancelled contexts the way the real adapter does and
// records every rejected write.
type strictCache struct {
	fakeCache
	setErrs map[string]error
}

func (c *strictCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.fakeCache.Get(ctx, key, dst)
}

func (c *strictCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if err := ctx.Err(); err != nil {
		if c.setErrs == nil {
			c.setErrs = map[string]error{}
		}
		c.setErrs[key] = err
		return err
	}
	return c.fakeCache.Set(ctx, key, v, ttlSec)
}

func fallbackService() *content.Service {
	bundle := staticdata.Bundle{Content: map[string]any{}, Hotel: map[string]any{}}
	for i := 0; i < 12; i++ {
		bundle.Photos = append(bundle.Photos, staticdata.Photo{Path: "/images/photos/p.jpg"})
	}
	return content.New(shared.ModeFallback, nil, staticdata.NewSynthesizer(bundle))
}

// ---- tests ----

func TestGetSettings_FallbackDefaults(t *testing.T) {
	s := fallbackService()
	got, err := s.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Currency != domain.CurrencyUSD {
		t.Fatalf("currency: %q", got.Currency)
	}
	if got.DirectBookingEnabled {
		t.Fatal("directBookingEnabled must be false in fallback mode")
	}
}

func TestGetRoomBySlug_ConsistentWithBulkListing(t *testing.T) {
	s := fallbackService()
	ctx := context.Background()

	rooms, err := s.GetRooms(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, room := range rooms {
		got, err := s.GetRoomBySlug(ctx, room.Slug.Current)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got == nil || got.ID != room.ID {
			t.Fatalf("slug %q: got %+v, want id %q", room.Slug.Current, got, room.ID)
		}
	}

	missing, err := s.GetRoomBySlug(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("not-found must not be an error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil, got %+v", missing)
	}
}

func TestGetRooms_RemoteMapsDocuments(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{
		`== "room"]`: `[
			{"_id": "r1", "name": "One", "slug": {"current": "one"}, "capacity": 2, "images": []},
			{"_id": "r2", "name": "Two", "slug": {"current": "two"}, "capacity": 4, "images": []}
		]`,
	}}
	s := content.New(shared.ModeRemote, q, nil)

	rooms, err := s.GetRooms(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rooms) != 2 || rooms[0].ID != "r1" || rooms[1].Slug.Current != "two" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestGetRoomBySlug_RemoteNotFound(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{}}
	s := content.New(shared.ModeRemote, q, nil)

	got, err := s.GetRoomBySlug(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("null result must not be an error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil room, got %+v", got)
	}
}

func TestGetSettings_RemoteAbsentSingleton(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{}}
	s := content.New(shared.ModeRemote, q, nil)

	got, err := s.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != nil {
		t.Fatalf("absent singleton must be nil, got %+v", got)
	}
}

func TestGetAllPageData_FallbackComplete(t *testing.T) {
	s := fallbackService()
	pd, err := s.GetAllPageData(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pd.Settings == nil || pd.Homepage == nil {
		t.Fatalf("singletons missing: %+v", pd)
	}
	if len(pd.Rooms) != 2 || len(pd.Amenities) != 3 || len(pd.Seasons) != 3 ||
		len(pd.Extras) != 3 || len(pd.Faq) != 4 || len(pd.Testimonials) != 3 {
		t.Fatalf("representative sets wrong: %+v", pd)
	}
	if pd.Gallery == nil || pd.Experiences == nil {
		t.Fatal("lists must never be nil after assembly")
	}
}

func TestGetAllPageData_OneFailureFailsAggregate(t *testing.T) {
	q := &fakeQuerier{
		responses: map[string]string{`== "room"]`: `[]`},
		failOn:    `"season"`,
	}
	s := content.New(shared.ModeRemote, q, nil)

	pd, err := s.GetAllPageData(context.Background())
	if err == nil {
		t.Fatal("expected aggregate failure when one fetch fails")
	}
	if pd != nil {
		t.Fatalf("no partial result allowed, got %+v", pd)
	}
}

func TestGetRooms_CacheMissThenHit(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{
		`== "room"]`: `[{"_id": "r1", "name": "One", "slug": {"current": "one"}, "images": []}]`,
	}}
	cache := &fakeCache{}
	s := content.New(shared.ModeRemote, q, nil).WithCache(cache, 10*time.Minute)
	ctx := context.Background()

	first, err := s.GetRooms(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("unexpected rooms: %+v", first)
	}
	callsAfterMiss := q.calls.Load()

	// Second read must come from cache.
	second, err := s.GetRooms(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := q.calls.Load(); got != callsAfterMiss {
		t.Fatalf("expected cache hit, got %d extra remote calls", got-callsAfterMiss)
	}
	if second[0].ID != "r1" {
		t.Fatalf("cached value mismatch: %+v", second)
	}
}

func TestGetAllPageData_StoresAggregateAfterFanOut(t *testing.T) {
	cache := &strictCache{}
	s := fallbackService().WithCache(cache, 10*time.Minute)

	if _, err := s.GetAllPageData(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	// the fan-out's derived context is done once the group joins; the store
	// must run on the caller's context, not the group's
	if len(cache.setErrs) != 0 {
		t.Fatalf("cache writes rejected: %v", cache.setErrs)
	}
	if _, ok := cache.store["content:pagedata"]; !ok {
		t.Fatal("aggregate was never cached")
	}
}

func TestGetRooms_ZeroTTLDisablesCache(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{
		`== "room"]`: `[{"_id": "r1", "name": "One", "slug": {"current": "one"}, "images": []}]`,
	}}
	cache := &fakeCache{}
	s := content.New(shared.ModeRemote, q, nil).WithCache(cache, 0)
	ctx := context.Background()

	_, _ = s.GetRooms(ctx)
	_, _ = s.GetRooms(ctx)
	if got := q.calls.Load(); got != 2 {
		t.Fatalf("TTL 0 must fetch every time, got %d calls", got)
	}
	if len(cache.store) != 0 {
		t.Fatalf("nothing should be cached with TTL 0: %v", cache.store)
	}
}

package shared

import "testing"

func TestMode_FallbackWithoutRemoteConfig(t *testing.T) {
	if got := (Config{}).Mode(); got != ModeFallback {
		t.Fatalf("empty config must resolve to fallback, got %q", got)
	}
	if got := (Config{SanityProjectID: "projx"}).Mode(); got != ModeFallback {
		t.Fatalf("project id without dataset must resolve to fallback, got %q", got)
	}
	if got := (Config{SanityDataset: "production"}).Mode(); got != ModeFallback {
		t.Fatalf("dataset without project id must resolve to fallback, got %q", got)
	}
}

func TestMode_RemoteWhenFullyConfigured(t *testing.T) {
	c := Config{SanityProjectID: "projx", SanityDataset: "production"}
	if got := c.Mode(); got != ModeRemote {
		t.Fatalf("got %q want remote", got)
	}
}

func TestMode_StaticOverrideWins(t *testing.T) {
	c := Config{SanityProjectID: "projx", SanityDataset: "production", StaticMode: true}
	if got := c.Mode(); got != ModeFallback {
		t.Fatalf("static override must force fallback, got %q", got)
	}
}

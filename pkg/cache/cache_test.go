package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should never hit")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "banner", []byte("png-bytes"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "banner")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v", hit, err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Get = %q", data)
	}

	if err := c.Delete(ctx, "banner"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "banner"); hit {
		t.Error("entry still present after Delete")
	}
	if err := c.Delete(ctx, "banner"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpired(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v", hit, err)
	}
}

func TestFileCacheEmptyKey(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(context.Background(), "", nil, 0); err != ErrInvalidKey {
		t.Errorf("Set(\"\") = %v, want ErrInvalidKey", err)
	}
	if _, _, err := c.Get(context.Background(), ""); err != ErrInvalidKey {
		t.Errorf("Get(\"\") = %v, want ErrInvalidKey", err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("%d shard dirs left after Clear", len(entries))
	}

	missing := &FileCache{dir: filepath.Join(t.TempDir(), "nope")}
	if n, err := missing.Clear(); n != 0 || err != nil {
		t.Errorf("Clear on missing dir = %d, %v", n, err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}

	j1, err := HashJSON(map[string]string{"name": "a"})
	if err != nil {
		t.Fatal(err)
	}
	j2, _ := HashJSON(map[string]string{"name": "b"})
	if j1 == j2 {
		t.Error("HashJSON should differ for different values")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := ArtifactKeyOpts{Style: "modern", Format: "png", Scale: 1}

	tests := []struct {
		name string
		opts ArtifactKeyOpts
	}{
		{"style", ArtifactKeyOpts{Style: "retro", Format: "png", Scale: 1}},
		{"format", ArtifactKeyOpts{Style: "modern", Format: "jpeg", Scale: 1}},
		{"scale", ArtifactKeyOpts{Style: "modern", Format: "png", Scale: 2}},
		{"seed", ArtifactKeyOpts{Style: "modern", Format: "png", Scale: 1, Seed: 7}},
	}
	want := k.ArtifactKey("cfg", base)
	if !strings.HasPrefix(want, "artifact:") {
		t.Errorf("key %q missing prefix", want)
	}
	if want != k.ArtifactKey("cfg", base) {
		t.Error("ArtifactKey should be deterministic")
	}
	if want == k.ArtifactKey("other", base) {
		t.Error("different config hashes should produce different keys")
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if k.ArtifactKey("cfg", tt.opts) == want {
				t.Errorf("changing %s should change the key", tt.name)
			}
		})
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := ArtifactKeyOpts{Style: "modern", Format: "png", Scale: 1}
	scoped := NewScopedKeyer(NewDefaultKeyer(), "v1:")
	key := scoped.ArtifactKey("cfg", opts)
	if key != "v1:"+NewDefaultKeyer().ArtifactKey("cfg", opts) {
		t.Errorf("ScopedKeyer key = %s", key)
	}
	if NewScopedKeyer(nil, "p:").ArtifactKey("cfg", opts)[:2] != "p:" {
		t.Error("nil inner should fall back to DefaultKeyer")
	}
}

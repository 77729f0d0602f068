package cacheinfra

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero capacity",
			mutate:  func(c *Config) { c.Capacity = 0 },
			wantErr: "Capacity",
		},
		{
			name:    "zero shards",
			mutate:  func(c *Config) { c.NumShards = 0 },
			wantErr: "NumShards",
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.TTL = 0 },
			wantErr: "TTL",
		},
		{
			name:    "eviction percentage too high",
			mutate:  func(c *Config) { c.EvictionPercentage = 101 },
			wantErr: "EvictionPercentage",
		},
		{
			name:    "eviction percentage too low",
			mutate:  func(c *Config) { c.EvictionPercentage = 0 },
			wantErr: "EvictionPercentage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error mentioning %q, got nil", tt.wantErr)
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.wantErr {
				t.Errorf("expected error on field %q, got %q", tt.wantErr, cfgErr.Field)
			}
		})
	}
}

func TestNewSturdycStore_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = -1

	if _, err := NewSturdycStore(cfg); err == nil {
		t.Fatal("expected constructor to reject invalid config")
	}
}

func TestSturdycStore_RoundTrip(t *testing.T) {
	store, err := NewSturdycStore(DefaultConfig())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "menu::absent"); err != nil || ok {
		t.Fatalf("expected clean miss for absent key, got ok=%v err=%v", ok, err)
	}

	want := []byte(`{"id":"m1"}`)
	if err := store.Set(ctx, "menu::m1", want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok, err := store.Get(ctx, "menu::m1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("round trip mismatch: got %q, want %q", got, want)
	}

	if err := store.Delete(ctx, "menu::m1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "menu::m1"); ok {
		t.Error("expected miss after delete")
	}

	// Deleting an absent key is a no-op, not an error.
	if err := store.Delete(ctx, "menu::m1"); err != nil {
		t.Errorf("expected nil error deleting absent key, got %v", err)
	}
}

func TestSturdycStore_EntriesExpire(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TTL = 50 * time.Millisecond
	cfg.EvictionInterval = 10 * time.Millisecond

	store, err := NewSturdycStore(cfg)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "dish::d1", []byte("blob")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "dish::d1"); !ok {
		t.Fatal("expected hit immediately after set")
	}

	time.Sleep(150 * time.Millisecond)

	if _, ok, _ := store.Get(ctx, "dish::d1"); ok {
		t.Error("expected entry to expire after TTL")
	}
}

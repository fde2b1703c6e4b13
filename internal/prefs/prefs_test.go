// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetAndGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "colorScheme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "colorScheme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "dark" {
		t.Errorf("Get = %q, want %q", got, "dark")
	}

	// Overwrite
	if err := s.Set(ctx, "colorScheme", "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := s.Get(ctx, "colorScheme"); got != "light" {
		t.Errorf("Get after overwrite = %q, want %q", got, "light")
	}
}

func TestGetMissingKey(t *testing.T) {
	s := openStore(t)

	_, err := s.Get(context.Background(), "backgroundScheme")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set(ctx, "colorScheme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Get(ctx, "colorScheme")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != "dark" {
		t.Errorf("Get = %q, want %q", got, "dark")
	}
}

func TestSubscribe(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	ch, cancel := s.Subscribe("colorScheme")
	defer cancel()

	if err := s.Set(ctx, "colorScheme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	select {
	case got := <-ch:
		if got != "dark" {
			t.Errorf("received %q, want %q", got, "dark")
		}
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}

	// Other keys do not notify this subscriber.
	if err := s.Set(ctx, "backgroundScheme", "nebula"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	select {
	case got := <-ch:
		t.Errorf("unexpected notification %q", got)
	default:
	}
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	s := openStore(t)

	ch, cancel := s.Subscribe("colorScheme")
	cancel()

	if _, ok := <-ch; ok {
		t.Error("cancel should close the subscription channel")
	}

	// A set after cancel must not panic on the removed channel.
	if err := s.Set(context.Background(), "colorScheme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

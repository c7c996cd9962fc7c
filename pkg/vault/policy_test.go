package vault

import (
	"strings"
	"testing"
)

func TestStorageKeyScopedToUser(t *testing.T) {
	k1 := StorageKey("user-a")
	k2 := StorageKey("user-a")
	if !strings.HasPrefix(k1, "user-a/") || !strings.HasPrefix(k2, "user-a/") {
		t.Fatalf("keys must be prefix-scoped to the owner: %q %q", k1, k2)
	}
	if k1 == k2 {
		t.Fatal("repeated uploads must not collide")
	}
}

func TestAuthorize(t *testing.T) {
	if err := Authorize("user-a", "user-a"); err != nil {
		t.Fatalf("owner should be authorized: %v", err)
	}
	if err := Authorize("user-a", "user-b"); err != ErrNotFound {
		t.Fatalf("non-owner must see not-found, got %v", err)
	}
}

func TestKeyFromLocator(t *testing.T) {
	key, err := KeyFromLocator("https://cdn.example.com/storage/v1/object/public/DocumentVault/user-a/abc-123")
	if err != nil {
		t.Fatalf("KeyFromLocator: %v", err)
	}
	if key != "user-a/abc-123" {
		t.Fatalf("got %q", key)
	}

	if _, err := KeyFromLocator("https://cdn.example.com/short"); err == nil {
		t.Fatal("expected error for short path")
	}
}

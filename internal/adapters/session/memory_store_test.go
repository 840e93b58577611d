package session

import "testing"

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if store.Authenticated("") {
		t.Error("empty token must not authenticate")
	}
	if store.Authenticated("nope") {
		t.Error("unknown token must not authenticate")
	}

	token, err := store.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("issued token is empty")
	}

	if !store.Authenticated(token) {
		t.Error("issued token must authenticate")
	}

	other, err := store.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if other == token {
		t.Error("tokens must be unique per session")
	}
}

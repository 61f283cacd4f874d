package config

import (
	"strings"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestCredentialManagerRoundTrip(t *testing.T) {
	keyring.MockInit()
	cm := NewCredentialManager()

	if cm.HasAPIKey() {
		t.Fatal("Expected no API key in a fresh mock store")
	}

	if err := cm.StoreAPIKey("0123456789abcdef0123"); err != nil {
		t.Fatalf("Failed to store API key: %v", err)
	}

	if !cm.HasAPIKey() {
		t.Error("Expected HasAPIKey to report a stored key")
	}

	key, err := cm.GetAPIKey()
	if err != nil {
		t.Fatalf("Failed to retrieve API key: %v", err)
	}
	if key != "0123456789abcdef0123" {
		t.Errorf("Retrieved key mismatch: got %q", key)
	}

	if err := cm.DeleteAPIKey(); err != nil {
		t.Fatalf("Failed to delete API key: %v", err)
	}
	if cm.HasAPIKey() {
		t.Error("Expected key to be gone after delete")
	}

	// Deleting again is not an error
	if err := cm.DeleteAPIKey(); err != nil {
		t.Errorf("Deleting a missing key should be a no-op, got: %v", err)
	}
}

func TestStoreAPIKeyValidation(t *testing.T) {
	keyring.MockInit()
	cm := NewCredentialManager()

	if err := cm.StoreAPIKey("   "); err == nil {
		t.Error("Expected error for blank API key")
	}

	err := cm.StoreAPIKey("tooshort")
	if err == nil {
		t.Fatal("Expected error for short API key")
	}
	if !strings.Contains(err.Error(), "too short") {
		t.Errorf("Expected 'too short' error, got: %v", err)
	}
}

func TestGetAPIKeyMissingMentionsRemediation(t *testing.T) {
	keyring.MockInit()
	cm := NewCredentialManager()

	_, err := cm.GetAPIKey()
	if err == nil {
		t.Fatal("Expected error when no key is stored")
	}
	if !strings.Contains(err.Error(), "Help Scout") {
		t.Errorf("Expected remediation guidance in error, got: %v", err)
	}
}

package config

import (
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service name for OS credential store
	credentialService = "hsdocs"
	// Key for the HelpScout Docs API key
	apiKeyName = "helpscout_api_key"
)

// CredentialManager handles secure storage and retrieval of the HelpScout
// API key in the OS credential store. The environment variable
// HELPSCOUT_API_KEY always takes precedence over anything stored here.
type CredentialManager struct {
	service string
}

// NewCredentialManager creates a new credential manager instance
func NewCredentialManager() *CredentialManager {
	return &CredentialManager{
		service: credentialService,
	}
}

// StoreAPIKey securely stores a HelpScout Docs API key in the OS credential store.
//
// Parameters:
//   - key: HelpScout Docs API key to store
//
// Returns:
//   - error: Storage errors or validation failures
func (cm *CredentialManager) StoreAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	if len(key) < 16 {
		return fmt.Errorf("API key too short (minimum 16 characters) - %s", APIKeyHelp)
	}

	if err := keyring.Set(cm.service, apiKeyName, key); err != nil {
		return fmt.Errorf("failed to store API key in credential store: %w", err)
	}

	return nil
}

// GetAPIKey retrieves the stored HelpScout Docs API key from the OS credential store.
//
// Returns:
//   - string: The stored API key
//   - error: Retrieval errors or if no key is stored
func (cm *CredentialManager) GetAPIKey() (string, error) {
	key, err := keyring.Get(cm.service, apiKeyName)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("no API key found - %s", APIKeyHelp)
		}
		return "", fmt.Errorf("failed to retrieve API key from credential store: %w", err)
	}

	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("stored API key is empty - %s", APIKeyHelp)
	}

	return key, nil
}

// DeleteAPIKey removes the stored API key from the OS credential store.
// Returns nil if no key is stored.
func (cm *CredentialManager) DeleteAPIKey() error {
	err := keyring.Delete(cm.service, apiKeyName)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete API key from credential store: %w", err)
	}
	return nil
}

// HasAPIKey checks if an API key is stored without retrieving it.
//
// Returns:
//   - bool: true if a key is stored, false otherwise
func (cm *CredentialManager) HasAPIKey() bool {
	_, err := keyring.Get(cm.service, apiKeyName)
	return err == nil
}

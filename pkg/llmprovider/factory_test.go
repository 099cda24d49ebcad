package llmprovider

import (
	"errors"
	"testing"

	"tailortalk/config"
)

func TestInitializeProviders(t *testing.T) {
	t.Run("Sorted by priority with disabled filtered", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "gemini-key"},
				{Name: "groq", Enabled: true, Priority: 1, APIKey: "groq-key"},
				{Name: "groq", Enabled: false, Priority: 0, APIKey: "disabled-key"},
			},
		}

		providers, err := InitializeProviders(cfg)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		if len(providers) != 2 {
			t.Fatalf("Expected 2 providers, got: %d", len(providers))
		}
		if providers[0].Name() != "groq" {
			t.Errorf("Expected first provider 'groq', got: %s", providers[0].Name())
		}
		if providers[1].Name() != "gemini" {
			t.Errorf("Expected second provider 'gemini', got: %s", providers[1].Name())
		}
	})

	t.Run("Skips provider with missing API key", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1, APIKey: ""},
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "gemini-key"},
			},
		}

		providers, err := InitializeProviders(cfg)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(providers) != 1 {
			t.Fatalf("Expected 1 provider, got: %d", len(providers))
		}
		if providers[0].Name() != "gemini" {
			t.Errorf("Expected surviving provider 'gemini', got: %s", providers[0].Name())
		}
	})

	t.Run("Error when all providers fail to initialize", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "unknown", Enabled: true, Priority: 1, APIKey: "key"},
			},
		}

		if _, err := InitializeProviders(cfg); err == nil {
			t.Fatal("Expected error when no provider initializes")
		}
	})

	t.Run("Error when no providers enabled", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: false, Priority: 1, APIKey: "key"},
			},
		}

		_, err := InitializeProviders(cfg)
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
		}
	})

	t.Run("Nil config", func(t *testing.T) {
		if _, err := InitializeProviders(nil); err == nil {
			t.Fatal("Expected error for nil config")
		}
	})
}

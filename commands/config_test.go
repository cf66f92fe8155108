package commands

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	config, err := NewConfig()
	if err != nil {
		t.Fatalf("Unexpected error returned from NewConfig (%v)", err)
	}

	if config.Workdir != DEFAULT_WORKDIR {
		t.Errorf("Incorrect default workdir - expected:%v, got:%v", DEFAULT_WORKDIR, config.Workdir)
	}

	if config.Credentials != DEFAULT_CREDENTIALS {
		t.Errorf("Incorrect default credentials - expected:%v, got:%v", DEFAULT_CREDENTIALS, config.Credentials)
	}
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("GSHEET_KEYRING_CREDENTIALS", "/tmp/credentials.json")
	t.Setenv("GSHEET_KEYRING_TITLE", "passwords")
	t.Setenv("GSHEET_KEYRING_CACHE_WINDOW", "90s")

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("Unexpected error returned from NewConfig (%v)", err)
	}

	if config.Credentials != "/tmp/credentials.json" {
		t.Errorf("Incorrect credentials - expected:%v, got:%v", "/tmp/credentials.json", config.Credentials)
	}

	if config.Title != "passwords" {
		t.Errorf("Incorrect title - expected:%v, got:%v", "passwords", config.Title)
	}

	if config.Window != 90*time.Second {
		t.Errorf("Incorrect cache window - expected:%v, got:%v", 90*time.Second, config.Window)
	}
}

func TestNewConfigWithInvalidWindow(t *testing.T) {
	t.Setenv("GSHEET_KEYRING_CACHE_WINDOW", "ninety seconds")

	if _, err := NewConfig(); err == nil {
		t.Fatalf("Expected error return for invalid cache window, got %v", err)
	}
}

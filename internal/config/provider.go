package config

import (
	"fmt"
	"maps"
	"os"
	"sync"

	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/usage"
)

// Provider reads and edits one rc file and implements domain.ConfigProvider.
// Values resolve as defaults < rc file < overrides.
type Provider struct {
	path string
	log  domain.Logger

	mu        sync.RWMutex
	overrides map[string]string
}

// NewProvider creates a provider for the rc file at path.
func NewProvider(path string, log domain.Logger) *Provider {
	return &Provider{
		path:      path,
		log:       log,
		overrides: make(map[string]string),
	}
}

// Path returns the rc file path.
func (p *Provider) Path() string {
	return p.path
}

// Init writes the default rc file if none exists yet.
func (p *Provider) Init() error {
	if info, err := os.Stat(p.path); err == nil && info.Size() > 0 {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(p.path, 0600); err != nil {
				p.log.Warn("config: could not set permissions on %s: %v", p.path, err)
			}
		}
		return nil
	}

	return WithLock(p.path, func() error {
		return WriteLines(p.path, initialLines())
	})
}

// Override sets a value for the lifetime of the provider without
// touching the rc file. Command-line flags use it.
func (p *Provider) Override(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overrides[key] = value
}

func (p *Provider) file() map[string]string {
	lines, err := ReadLines(p.path)
	if err != nil {
		p.log.Warn("config: read %s: %v", p.path, err)
		return nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		p.log.Warn("config: parse %s: %v", p.path, err)
		return nil
	}
	return cfg
}

// Get returns the value for a key: override, then rc file, then the default.
func (p *Provider) Get(key string) (string, bool) {
	p.mu.RLock()
	v, ok := p.overrides[key]
	p.mu.RUnlock()
	if ok {
		return v, true
	}

	if v, ok := p.file()[key]; ok {
		return v, true
	}

	if k, ok := domain.GetConfigKey(key); ok {
		return defaultValue(k), true
	}
	return "", false
}

// GetAll returns every value with the same precedence as Get.
func (p *Provider) GetAll() (map[string]string, error) {
	result := DefaultValues()
	maps.Copy(result, p.file())

	p.mu.RLock()
	maps.Copy(result, p.overrides)
	p.mu.RUnlock()

	return result, nil
}

// Set persists key=value. Only catalog keys are accepted.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return p.edit(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes key from the rc file so its default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return p.edit(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func (p *Provider) edit(fn func([]string) []string) error {
	err := WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		return WriteLines(p.path, fn(lines))
	})
	if err != nil {
		return usage.IOFailure(p.path, fmt.Errorf("config: %w", err))
	}
	return nil
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)

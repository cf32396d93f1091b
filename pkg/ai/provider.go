package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

var (
	// ErrNotConfigured is returned when no provider credentials were supplied
	ErrNotConfigured = errors.New("ai provider not configured")
	// ErrAlreadyInitialized is returned by a second ProviderHolder.Init
	ErrAlreadyInitialized = errors.New("ai provider already initialized")
)

// FileState is the processing state of an uploaded media file
type FileState string

const (
	FileStateProcessing FileState = "processing"
	FileStateActive     FileState = "active"
	FileStateFailed     FileState = "failed"
)

// IsTerminal reports whether polling can stop
func (s FileState) IsTerminal() bool {
	return s == FileStateActive || s == FileStateFailed
}

// File is a provider-side handle to uploaded audio
type File struct {
	Name     string
	URI      string
	MIMEType string
	State    FileState
	Error    string
}

// Provider is a remote service able to ingest audio and answer a prompt about it
type Provider interface {
	// Name identifies the provider in logs
	Name() string

	// Upload sends the local file and returns the remote handle
	Upload(ctx context.Context, path, displayName string) (*File, error)

	// Status fetches the current state of an uploaded file
	Status(ctx context.Context, name string) (*File, error)

	// Generate runs the prompt against a ready file and returns the model's raw text
	Generate(ctx context.Context, file *File, prompt string) (string, error)

	// Delete removes the remote file
	Delete(ctx context.Context, name string) error
}

// NewProvider builds the provider selected by cfg.Provider.
// It returns ErrNotConfigured when the required keys are missing.
func NewProvider(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is empty", ErrNotConfigured)
		}
		return NewGeminiProvider(ctx, cfg)
	case config.ProviderAssemblyAI:
		if cfg.AssemblyAIKey == "" || cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("%w: ASSEMBLYAI_API_KEY and GROQ_API_KEY are required", ErrNotConfigured)
		}
		return NewAssemblyAIProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}

// ProviderHolder owns the process-wide provider. It is initialized once at
// startup and read-only afterwards.
type ProviderHolder struct {
	mu          sync.RWMutex
	initialized bool
	provider    Provider
}

// NewProviderHolder creates an empty holder
func NewProviderHolder() *ProviderHolder {
	return &ProviderHolder{}
}

// Init stores the provider. A nil provider leaves the holder unconfigured.
func (h *ProviderHolder) Init(p Provider) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initialized {
		return ErrAlreadyInitialized
	}
	h.initialized = true
	h.provider = p
	return nil
}

// Get returns the provider or ErrNotConfigured
func (h *ProviderHolder) Get() (Provider, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.provider == nil {
		return nil, ErrNotConfigured
	}
	return h.provider, nil
}

// Configured reports whether a provider is available
func (h *ProviderHolder) Configured() bool {
	_, err := h.Get()
	return err == nil
}

package ai

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const defaultAudioMIMEType = "audio/mpeg"

// GeminiProvider uploads audio through the Gemini Files API and asks the
// model for a JSON answer
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiProvider creates a Gemini client from config
func NewGeminiProvider(ctx context.Context, cfg config.AIConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   cfg.GeminiModel,
		timeout: cfg.RequestTimeout,
	}, nil
}

// Name implements Provider
func (p *GeminiProvider) Name() string {
	return config.ProviderGemini
}

// Upload implements Provider
func (p *GeminiProvider) Upload(ctx context.Context, path, displayName string) (*File, error) {
	f, err := p.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    AudioMIMEType(displayName),
		DisplayName: displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini upload: %w", err)
	}
	return fromGeminiFile(f), nil
}

// Status implements Provider
func (p *GeminiProvider) Status(ctx context.Context, name string) (*File, error) {
	f, err := p.client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini get file: %w", err)
	}
	return fromGeminiFile(f), nil
}

// Generate implements Provider
func (p *GeminiProvider) Generate(ctx context.Context, file *File, prompt string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(file.URI, file.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

// Delete implements Provider
func (p *GeminiProvider) Delete(ctx context.Context, name string) error {
	if _, err := p.client.Files.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("gemini delete file: %w", err)
	}
	return nil
}

func fromGeminiFile(f *genai.File) *File {
	out := &File{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    FileStateProcessing,
	}
	switch f.State {
	case genai.FileStateActive:
		out.State = FileStateActive
	case genai.FileStateFailed:
		out.State = FileStateFailed
	}
	if f.Error != nil {
		out.Error = f.Error.Message
	}
	return out
}

// AudioMIMEType guesses the MIME type of an audio upload from its filename
func AudioMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	case ".webm":
		return "audio/webm"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return defaultAudioMIMEType
}

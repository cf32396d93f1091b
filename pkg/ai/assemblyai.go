package ai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const transcriptSystemPrompt = "You analyze meeting transcripts. Reply with a single JSON object and nothing else."

// AssemblyAIProvider transcribes audio with AssemblyAI and analyzes the
// transcript text with Groq. The file handle is the transcript ID.
type AssemblyAIProvider struct {
	client *aai.Client
	groq   *GroqClient
}

// NewAssemblyAIProvider creates the provider from config
func NewAssemblyAIProvider(cfg config.AIConfig) *AssemblyAIProvider {
	return &AssemblyAIProvider{
		client: aai.NewClient(cfg.AssemblyAIKey),
		groq:   NewGroqClient(cfg),
	}
}

// Name implements Provider
func (p *AssemblyAIProvider) Name() string {
	return config.ProviderAssemblyAI
}

// Upload implements Provider. The audio is uploaded and a transcript is
// submitted right away; its ID becomes the handle.
func (p *AssemblyAIProvider) Upload(ctx context.Context, path, displayName string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	uploadURL, err := p.client.Upload(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("assemblyai upload: %w", err)
	}

	transcript, err := p.client.Transcripts.SubmitFromURL(ctx, uploadURL, &aai.TranscriptOptionalParams{
		SpeakerLabels:     aai.Bool(true),
		LanguageDetection: aai.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("assemblyai submit: %w", err)
	}

	out := fromTranscript(transcript)
	out.URI = uploadURL
	out.MIMEType = AudioMIMEType(displayName)
	return out, nil
}

// Status implements Provider
func (p *AssemblyAIProvider) Status(ctx context.Context, name string) (*File, error) {
	transcript, err := p.client.Transcripts.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("assemblyai get transcript: %w", err)
	}
	return fromTranscript(transcript), nil
}

// Generate implements Provider
func (p *AssemblyAIProvider) Generate(ctx context.Context, file *File, prompt string) (string, error) {
	transcript, err := p.client.Transcripts.Get(ctx, file.Name)
	if err != nil {
		return "", fmt.Errorf("assemblyai get transcript: %w", err)
	}
	if transcript.Text == nil || *transcript.Text == "" {
		return "", fmt.Errorf("assemblyai transcript %s has no text", file.Name)
	}

	user := prompt + "\n\nTranscript:\n" + *transcript.Text
	content, err := p.groq.CompleteJSON(ctx, transcriptSystemPrompt, user)
	if err != nil {
		return "", fmt.Errorf("groq analysis: %w", err)
	}
	return content, nil
}

// Delete implements Provider
func (p *AssemblyAIProvider) Delete(ctx context.Context, name string) error {
	if _, err := p.client.Transcripts.Delete(ctx, name); err != nil {
		return fmt.Errorf("assemblyai delete transcript: %w", err)
	}
	return nil
}

func fromTranscript(t aai.Transcript) *File {
	out := &File{State: FileStateProcessing}
	if t.ID != nil {
		out.Name = *t.ID
	}
	switch t.Status {
	case aai.TranscriptStatusCompleted:
		out.State = FileStateActive
	case aai.TranscriptStatusError:
		out.State = FileStateFailed
		if t.Error != nil {
			out.Error = *t.Error
		}
	}
	return out
}

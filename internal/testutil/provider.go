package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
)

// FakeProvider is an in-memory pkg/ai.Provider. States are returned by
// Status in order; the last one repeats.
type FakeProvider struct {
	mu sync.Mutex

	UploadErr   error
	StatusErr   error
	GenerateErr error
	DeleteErr   error

	States   []pkgai.FileState
	Response string

	Uploaded    []string
	StatusCalls int
	Prompts     []string
	Deleted     []string
}

// NewFakeProvider returns a provider whose files are immediately active and
// whose analysis is response
func NewFakeProvider(response string) *FakeProvider {
	return &FakeProvider{
		States:   []pkgai.FileState{pkgai.FileStateActive},
		Response: response,
	}
}

// NewHolder wraps p in an initialized holder
func NewHolder(p pkgai.Provider) *pkgai.ProviderHolder {
	h := pkgai.NewProviderHolder()
	if err := h.Init(p); err != nil {
		panic(err)
	}
	return h
}

// Name implements pkg/ai.Provider
func (f *FakeProvider) Name() string { return "fake" }

// Upload implements pkg/ai.Provider
func (f *FakeProvider) Upload(_ context.Context, path, displayName string) (*pkgai.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.UploadErr != nil {
		return nil, f.UploadErr
	}
	f.Uploaded = append(f.Uploaded, path)
	return &pkgai.File{
		Name:     fmt.Sprintf("files/%d", len(f.Uploaded)),
		URI:      "fake://" + displayName,
		MIMEType: pkgai.AudioMIMEType(displayName),
		State:    pkgai.FileStateProcessing,
	}, nil
}

// Status implements pkg/ai.Provider
func (f *FakeProvider) Status(_ context.Context, name string) (*pkgai.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.StatusCalls++
	if f.StatusErr != nil {
		return nil, f.StatusErr
	}
	state := pkgai.FileStateActive
	if len(f.States) > 0 {
		idx := f.StatusCalls - 1
		if idx >= len(f.States) {
			idx = len(f.States) - 1
		}
		state = f.States[idx]
	}
	file := &pkgai.File{Name: name, State: state}
	if state == pkgai.FileStateFailed {
		file.Error = "transcoding failed"
	}
	return file, nil
}

// Generate implements pkg/ai.Provider
func (f *FakeProvider) Generate(_ context.Context, _ *pkgai.File, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Prompts = append(f.Prompts, prompt)
	if f.GenerateErr != nil {
		return "", f.GenerateErr
	}
	return f.Response, nil
}

// Delete implements pkg/ai.Provider
func (f *FakeProvider) Delete(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Deleted = append(f.Deleted, name)
	return f.DeleteErr
}

// DeleteCount returns how many times name was released
func (f *FakeProvider) DeleteCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, d := range f.Deleted {
		if d == name {
			n++
		}
	}
	return n
}

// ErrFake is a generic transport failure for tests
var ErrFake = errors.New("fake transport failure")

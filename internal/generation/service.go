package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"smartresume/internal/llm"
	"smartresume/internal/shared/metrics"
	"smartresume/internal/shared/storage/object"
	"smartresume/internal/shared/telemetry"
	"smartresume/resume/model"
)

// State is the lifecycle position of the service.
type State string

const (
	StateIdle      State = "idle"
	StateGenerated State = "generated"
)

// NotGeneratedMessage is shown when a download is requested before any
// successful generation.
const NotGeneratedMessage = "No resume has been generated yet."

// Outcome is the result of one generate action.
type Outcome struct {
	Preview  Result[string]
	Document Result[DocumentRef]
	State    State
}

// Snapshot is the state after the last successful generation.
type Snapshot struct {
	State    State
	Preview  string
	Document *DocumentRef
}

// Service runs the generate action: validate, request, write.
type Service struct {
	requester Requester
	writer    Writer
	defaults  model.Options

	// genMu serializes Generate so the single output key is never written
	// concurrently. docMu pairs the object at the key with the ref below:
	// Generate holds it across Put and the state update, OpenDocument across
	// the snapshot and Open. mu guards the fields below.
	genMu    sync.Mutex
	docMu    sync.RWMutex
	mu       sync.RWMutex
	state    State
	preview  string
	document *DocumentRef
}

// NewService wires a service around a model client and a document sink.
func NewService(client llm.Client, store object.Store, key string, defaults model.Options) *Service {
	return &Service{
		requester: Requester{LLM: client},
		writer:    Writer{Store: store, Key: key},
		defaults:  defaults.WithDefaults(model.Options{}),
		state:     StateIdle,
	}
}

// Defaults returns the options applied when a request leaves them unset.
func (s *Service) Defaults() model.Options {
	return s.defaults
}

// Generate runs one generation. A failed model call writes nothing and leaves
// the state and any previous document untouched.
func (s *Service) Generate(ctx context.Context, input model.ResumeInput, opts model.Options) Outcome {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	metrics.IncGenerationStarted()
	start := time.Now()
	input = input.Clone()

	if f := validate(input, opts); f != nil {
		metrics.IncGenerationFailed()
		return s.failed(f, Fail[string](f))
	}
	opts = opts.WithDefaults(s.defaults)

	preview := s.requester.Request(ctx, input)
	if !preview.OK() {
		metrics.IncGenerationFailed()
		return s.failed(preview.Failure(), preview)
	}
	text, _ := preview.Value()

	s.docMu.Lock()
	document := s.writer.Write(ctx, input, text, opts)
	if !document.OK() {
		s.docMu.Unlock()
		metrics.IncGenerationFailed()
		telemetry.Error("generation.write_failed", map[string]any{"error": document.Failure().Error()})
		return Outcome{Preview: preview, Document: document, State: s.State()}
	}
	ref, _ := document.Value()

	s.mu.Lock()
	s.state = StateGenerated
	s.preview = text
	s.document = &ref
	s.mu.Unlock()
	s.docMu.Unlock()

	metrics.IncGenerationCompleted()
	telemetry.Info("generation.complete", map[string]any{
		"document_id": ref.ID,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return Outcome{Preview: preview, Document: document, State: StateGenerated}
}

func (s *Service) failed(f *Failure, preview Result[string]) Outcome {
	return Outcome{
		Preview:  preview,
		Document: Fail[DocumentRef](f),
		State:    s.State(),
	}
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns the state with the last preview and document.
func (s *Service) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{State: s.state, Preview: s.preview}
	if s.document != nil {
		ref := *s.document
		snap.Document = &ref
	}
	return snap
}

// OpenDocument opens the current document for download. It fails with
// KindNotGenerated while idle. The returned ref always describes the opened
// bytes.
func (s *Service) OpenDocument(ctx context.Context) (io.ReadCloser, DocumentRef, error) {
	s.docMu.RLock()
	defer s.docMu.RUnlock()
	snap := s.Current()
	if snap.State != StateGenerated || snap.Document == nil {
		return nil, DocumentRef{}, &Failure{Kind: KindNotGenerated, Message: NotGeneratedMessage}
	}
	rc, err := s.writer.Store.Open(ctx, snap.Document.Key)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return nil, DocumentRef{}, &Failure{Kind: KindNotGenerated, Message: NotGeneratedMessage, Err: err}
		}
		return nil, DocumentRef{}, fmt.Errorf("open document: %w", err)
	}
	return rc, *snap.Document, nil
}

func validate(input model.ResumeInput, opts model.Options) *Failure {
	err := input.Validate()
	if err == nil {
		err = opts.Validate()
	}
	if err == nil {
		return nil
	}
	f := &Failure{Kind: KindInvalidInput, Message: err.Error(), Err: err}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		f.Fields = verr.Fields
	}
	return f
}

package generation

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartresume/internal/shared/metrics"
	"smartresume/internal/shared/storage/object"
	"smartresume/internal/shared/telemetry"
	"smartresume/internal/shared/util"
	"smartresume/resume/model"
	"smartresume/resume/render"
)

// DocumentRef identifies the document written by the last generation.
type DocumentRef struct {
	ID        string        `json:"id"`
	Key       string        `json:"key"`
	MimeType  string        `json:"mimeType"`
	SizeBytes int64         `json:"sizeBytes"`
	Checksum  string        `json:"sha256"`
	Options   model.Options `json:"options"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (d DocumentRef) String() string {
	return d.Key
}

// Writer renders resume documents and hands them to the object store.
type Writer struct {
	Store object.Store
	Key   string
	Now   func() time.Time
}

// Write renders the document fully in memory and stores it in one Put at the
// fixed key. The preview text is not embedded; the document is laid out from
// the structured input.
func (w Writer) Write(ctx context.Context, input model.ResumeInput, preview string, opts model.Options) Result[DocumentRef] {
	_ = preview
	if w.Store == nil {
		return Fail[DocumentRef](writeFailure(fmt.Errorf("object store not configured")))
	}

	start := time.Now()
	docxBytes, err := render.RenderResume(input, opts)
	metrics.ObserveRenderDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return Fail[DocumentRef](writeFailure(fmt.Errorf("render docx: %w", err)))
	}

	size, err := w.Store.Put(ctx, w.Key, render.MimeType, bytes.NewReader(docxBytes))
	if err != nil {
		return Fail[DocumentRef](writeFailure(fmt.Errorf("store docx: %w", err)))
	}
	metrics.IncDocumentsWritten()

	ref := DocumentRef{
		ID:        uuid.NewString(),
		Key:       w.Key,
		MimeType:  render.MimeType,
		SizeBytes: size,
		Checksum:  util.Checksum(docxBytes),
		Options:   opts,
		CreatedAt: w.now(),
	}
	telemetry.Info("generation.document_written", map[string]any{
		"document_id": ref.ID,
		"key":         ref.Key,
		"size_bytes":  ref.SizeBytes,
		"theme":       string(opts.Theme),
		"font_size":   opts.FontSize,
	})
	return Ok(ref)
}

func (w Writer) now() time.Time {
	if w.Now != nil {
		return w.Now().UTC()
	}
	return time.Now().UTC()
}

func writeFailure(err error) *Failure {
	return &Failure{
		Kind:    KindWriteFailed,
		Message: "Error saving resume: " + err.Error(),
		Err:     err,
	}
}

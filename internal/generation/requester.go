package generation

import (
	"context"
	"errors"
	"strings"
	"time"

	"smartresume/internal/llm"
	"smartresume/internal/shared/metrics"
	"smartresume/internal/shared/telemetry"
	"smartresume/resume/model"
)

// EmptyResponseMessage is shown when the model answers with nothing.
const EmptyResponseMessage = "Error generating resume."

// Requester turns resume input into model-generated preview text.
type Requester struct {
	LLM llm.Client
}

// Request builds the prompt and calls the model once.
func (r Requester) Request(ctx context.Context, input model.ResumeInput) Result[string] {
	if r.LLM == nil {
		return Fail[string](generationFailure(llm.ErrNotConfigured))
	}

	prompt, err := llm.BuildResumePrompt(input)
	if err != nil {
		return Fail[string](generationFailure(err))
	}

	telemetry.Debug("generation.prompt_built", map[string]any{
		"prompt_version": llm.ResumePromptVersion,
		"prompt_chars":   len(prompt),
		"experiences":    len(input.Experience),
	})

	start := time.Now()
	text, err := r.LLM.Complete(ctx, prompt)
	elapsed := time.Since(start)
	metrics.ObserveLLMDurationMs(float64(elapsed.Milliseconds()))

	fields := map[string]any{
		"prompt_version": llm.ResumePromptVersion,
		"prompt_hash":    llm.HashPrompt(prompt),
		"duration_ms":    elapsed.Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		telemetry.Info("generation.request_failed", fields)
		if errors.Is(err, llm.ErrEmptyResponse) {
			return Fail[string](&Failure{Kind: KindEmptyResponse, Message: EmptyResponseMessage, Err: err})
		}
		return Fail[string](generationFailure(err))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		telemetry.Info("generation.request_empty", fields)
		return Fail[string](&Failure{Kind: KindEmptyResponse, Message: EmptyResponseMessage, Err: llm.ErrEmptyResponse})
	}

	fields["response_chars"] = len(text)
	telemetry.Info("generation.request_complete", fields)
	return Ok(text)
}

func generationFailure(err error) *Failure {
	return &Failure{
		Kind:    KindGenerationFailed,
		Message: "An error occurred: " + err.Error(),
		Err:     err,
	}
}

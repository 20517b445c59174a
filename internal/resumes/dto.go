package resumes

import (
	"smartresume/internal/generation"
	"smartresume/resume/model"
)

type generateRequest struct {
	Input   model.ResumeInput `json:"input"`
	Options model.Options     `json:"options"`
}

// ResumeResponse is the outward-facing generation state.
type ResumeResponse struct {
	State    generation.State        `json:"state"`
	Preview  string                  `json:"preview"`
	Document *generation.DocumentRef `json:"document"`
}

// OptionsResponse describes the accepted presentation settings.
type OptionsResponse struct {
	Themes     []model.Theme `json:"themes"`
	FontSize   rangeResponse `json:"fontSize"`
	Experience rangeResponse `json:"experience"`
	Defaults   model.Options `json:"defaults"`
}

type rangeResponse struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default,omitempty"`
}

func toResumeResponse(snap generation.Snapshot) ResumeResponse {
	return ResumeResponse{
		State:    snap.State,
		Preview:  snap.Preview,
		Document: snap.Document,
	}
}

func toOptionsResponse(defaults model.Options) OptionsResponse {
	return OptionsResponse{
		Themes:     model.Themes,
		FontSize:   rangeResponse{Min: model.MinFontSize, Max: model.MaxFontSize, Default: defaults.FontSize},
		Experience: rangeResponse{Min: model.MinExperiences, Max: model.MaxExperiences},
		Defaults:   defaults,
	}
}

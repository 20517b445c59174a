package resumes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartresume/internal/generation"
	"smartresume/internal/shared/server/middleware"
	"smartresume/internal/shared/server/respond"
	"smartresume/internal/shared/util"
	"smartresume/resume/render"
)

// DefaultDownloadName is offered to browsers when saving the document.
const DefaultDownloadName = "Generated_Resume.docx"

const maxBodyBytes = 1 << 20

// Handler wires HTTP handlers to the generation service.
type Handler struct {
	Svc          *generation.Service
	DownloadName string
}

// NewHandler constructs a Handler. The download name follows the output key.
func NewHandler(svc *generation.Service, outputKey string) *Handler {
	name, err := util.SanitizeFileName(path.Base(outputKey))
	if err != nil || name == "." {
		name = DefaultDownloadName
	}
	return &Handler{Svc: svc, DownloadName: name}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/options", h.options)
	rg.POST("/resumes", h.generate)
	rg.GET("/resumes/current", h.current)
	rg.GET("/resumes/download", h.download)
}

func (h *Handler) options(c *gin.Context) {
	respond.OK(c, toOptionsResponse(h.Svc.Defaults()))
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := decodeJSON(c.Request.Body, &req); err != nil {
		c.Set(middleware.FailureKindKey, string(generation.KindInvalidInput))
		respond.Error(c, http.StatusBadRequest, string(generation.KindInvalidInput), err.Error(), nil)
		return
	}

	out := h.Svc.Generate(c.Request.Context(), req.Input, req.Options)
	c.Set(middleware.GenerationStateKey, string(out.State))

	if f := out.Preview.Failure(); f != nil {
		h.fail(c, f, nil)
		return
	}
	if f := out.Document.Failure(); f != nil {
		h.fail(c, f, gin.H{"preview": out.Preview.Display()})
		return
	}

	ref, _ := out.Document.Value()
	c.Set(middleware.DocumentIDKey, ref.ID)
	respond.OK(c, ResumeResponse{
		State:    out.State,
		Preview:  out.Preview.Display(),
		Document: &ref,
	})
}

func (h *Handler) current(c *gin.Context) {
	snap := h.Svc.Current()
	c.Set(middleware.GenerationStateKey, string(snap.State))
	respond.OK(c, toResumeResponse(snap))
}

func (h *Handler) download(c *gin.Context) {
	reader, ref, err := h.Svc.OpenDocument(c.Request.Context())
	if err != nil {
		var f *generation.Failure
		if errors.As(err, &f) {
			h.fail(c, f, nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load generated resume", nil)
		return
	}
	defer reader.Close()

	c.Set(middleware.DocumentIDKey, ref.ID)
	c.Header("Content-Type", render.MimeType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.DownloadName))
	if ref.SizeBytes > 0 {
		c.Header("Content-Length", strconv.FormatInt(ref.SizeBytes, 10))
	}
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func (h *Handler) fail(c *gin.Context, f *generation.Failure, details gin.H) {
	c.Set(middleware.FailureKindKey, string(f.Kind))
	if f.Kind == generation.KindInvalidInput && len(f.Fields) > 0 {
		details = gin.H{"fields": f.Fields}
	}
	respond.Error(c, statusFor(f.Kind), string(f.Kind), f.Message, details)
}

func statusFor(kind generation.Kind) int {
	switch kind {
	case generation.KindInvalidInput:
		return http.StatusBadRequest
	case generation.KindGenerationFailed, generation.KindEmptyResponse:
		return http.StatusBadGateway
	case generation.KindNotGenerated:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(body io.Reader, dst any) error {
	if body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

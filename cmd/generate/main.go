package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smartresume/internal/bootstrap"
	"smartresume/internal/generation"
	"smartresume/internal/shared/config"
	localstore "smartresume/internal/shared/storage/object/local"
	"smartresume/internal/shared/telemetry"
	"smartresume/resume/model"
)

type cliFlags struct {
	input    string
	out      string
	theme    string
	fontSize int
	provider string
	model    string
	verbose  bool
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		exitErr(err.Error())
	}
	telemetry.SetOutput(os.Stderr, f.verbose)
	cfg, err := config.LoadWith(config.Overrides{LLMProvider: f.provider, LLMModel: f.model})
	if err != nil {
		exitErr(err.Error())
	}

	input, err := loadInput(f.input)
	if err != nil {
		exitErr(err.Error())
	}
	opts, err := optionsFor(f, cfg.DefaultOptions)
	if err != nil {
		exitErr(err.Error())
	}

	ctx := context.Background()
	client, _, err := bootstrap.BuildLLM(ctx, cfg)
	if err != nil {
		exitErr(err.Error())
	}

	outPath := f.out
	if outPath == "" {
		outPath = filepath.Join(cfg.LocalStoreDir, cfg.OutputKey)
	}
	store := localstore.New(filepath.Dir(outPath))
	svc := generation.NewService(client, store, filepath.Base(outPath), cfg.DefaultOptions)

	out := svc.Generate(ctx, input, opts)
	fmt.Println(out.Preview.Display())
	if !out.Document.OK() {
		exitErr(out.Document.Display())
	}
	ref, _ := out.Document.Value()
	fmt.Fprintf(os.Stderr, "OK: wrote %s (%d bytes)\n", outPath, ref.SizeBytes)
}

// parseFlags reads the command line before configuration is loaded so
// -provider and -model take part in validation.
func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.StringVar(&f.input, "input", "", "Path to a resume input JSON file")
	fs.StringVar(&f.out, "out", "", "Path to write the DOCX (default LOCAL_STORE_DIR/OUTPUT_KEY)")
	fs.StringVar(&f.theme, "theme", "", "Theme: Classic, Modern or Minimalist (default DEFAULT_THEME)")
	fs.IntVar(&f.fontSize, "font-size", 0, "Base font size in points, 10-20 (default DEFAULT_FONT_SIZE)")
	fs.StringVar(&f.provider, "provider", "", "LLM provider, gemini or openai (default LLM_PROVIDER)")
	fs.StringVar(&f.model, "model", "", "LLM model (default LLM_MODEL)")
	fs.BoolVar(&f.verbose, "v", false, "Write debug logs to stderr")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if strings.TrimSpace(f.input) == "" {
		return cliFlags{}, errors.New("input path is required")
	}
	return f, nil
}

func optionsFor(f cliFlags, defaults model.Options) (model.Options, error) {
	opts := model.Options{FontSize: f.fontSize}
	if strings.TrimSpace(f.theme) != "" {
		t, ok := model.ParseTheme(f.theme)
		if !ok {
			return model.Options{}, fmt.Errorf("unsupported theme: %s", f.theme)
		}
		opts.Theme = t
	}
	return opts.WithDefaults(defaults), nil
}

func loadInput(path string) (model.ResumeInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ResumeInput{}, fmt.Errorf("read input: %w", err)
	}
	var input model.ResumeInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return model.ResumeInput{}, fmt.Errorf("parse input: %w", err)
	}
	return input, nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

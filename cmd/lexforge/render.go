package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lexforge/internal/app/contract"
	"lexforge/internal/app/ds"
	"lexforge/internal/app/pdf"
)

const (
	formatText    = "text"
	formatPreview = "preview"
	formatHTML    = "html"
	formatPDF     = "pdf"
)

var (
	renderInput  string
	renderOutput string
	renderFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build a contract from a questionnaire JSON file",
	Long: `Reads a questionnaire (the body of POST /api/contract-text) and writes
the contract as plain text, on-screen preview, HTML or PDF.

Use "-" as input to read from stdin. PDF output needs Chrome.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "-", "Questionnaire JSON file")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", formatText, "Output format: text, preview, html or pdf")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if renderInput != "-" {
		f, err := os.Open(renderInput)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	req, err := decodeRequest(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if renderOutput != "" {
		f, err := os.Create(renderOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	format := normalizeFormat(renderFormat)
	builder := contract.NewBuilder(contract.WithDefaultCessionnaire(cfg.Cessionnaire))
	var renderer pdf.PDFRenderer
	var opts []pdf.GeneratorOption
	if format == formatPDF {
		renderer = pdf.NewChromedpRenderer(pdf.ChromedpConfig{
			Timeout:   cfg.PDF.Timeout,
			RemoteURL: cfg.PDF.RemoteURL,
			NoSandbox: cfg.PDF.NoSandbox,
		})
		defer renderer.Close()
		opts = append(opts, pdf.WithFormWriter(pdf.NewPdfcpuForms()))
	}
	return render(cmd.Context(), builder, renderer, req, format, out, opts...)
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

func decodeRequest(r io.Reader) (ds.ContractRequest, error) {
	var req ds.ContractRequest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("decode questionnaire: %w", err)
	}
	for _, t := range req.ContractTypes {
		if !ds.IsKnownContractType(t) {
			return req, fmt.Errorf("unknown contract type %q", t)
		}
	}
	if req.CessionMode != "" && !ds.IsKnownCessionMode(req.CessionMode) {
		return req, fmt.Errorf("unknown cession mode %q", req.CessionMode)
	}
	if req.AuthorType != "" && !ds.IsKnownAuthorType(req.AuthorType) {
		return req, fmt.Errorf("unknown author type %q", req.AuthorType)
	}
	return req, nil
}

// render renderer используется только для формата pdf
func render(ctx context.Context, builder *contract.Builder, renderer pdf.PDFRenderer, req ds.ContractRequest, format string, w io.Writer, opts ...pdf.GeneratorOption) error {
	format = normalizeFormat(format)
	switch format {
	case formatText:
		_, err := io.WriteString(w, builder.Build(req).Text())
		return err
	case formatPreview:
		_, err := io.WriteString(w, builder.Preview(req)+"\n")
		return err
	case formatHTML, formatPDF:
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	engine, err := pdf.NewHTMLEngine()
	if err != nil {
		return err
	}
	doc := builder.Build(req)
	if format == formatHTML {
		html, err := engine.Render(doc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	}

	if renderer == nil {
		return fmt.Errorf("pdf renderer is not configured")
	}
	result, err := pdf.NewGenerator(engine, renderer, opts...).Generate(ctx, doc)
	if err != nil {
		return err
	}
	_, err = w.Write(result.PDFData)
	return err
}

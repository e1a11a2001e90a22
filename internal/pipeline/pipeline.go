// Package pipeline runs the resume-to-homepage publishing flow.
package pipeline

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jonathan/resume-mining/internal/archive"
	"github.com/jonathan/resume-mining/internal/config"
	"github.com/jonathan/resume-mining/internal/observability"
	"github.com/jonathan/resume-mining/internal/parsing"
	"github.com/jonathan/resume-mining/internal/rendering"
	"github.com/jonathan/resume-mining/internal/types"
)

// Options holds everything a run needs. No step reads global state.
type Options struct {
	Config config.Config
	Parse  parsing.Options

	// Renderer defaults to a FileRenderer over Config.TemplatesDir
	Renderer rendering.Renderer
	// Now defaults to time.Now and stamps the archive file
	Now func() time.Time
	// Out receives progress messages, os.Stdout by default
	Out io.Writer
}

// Outcome describes a completed publish
type Outcome struct {
	Document    *types.ResumeDocument
	Page        string
	Homepage    string
	ArchivePath string
}

func (o *Options) withDefaults() Options {
	opts := *o
	if len(opts.Parse.Headers) == 0 {
		opts.Parse = parsing.DefaultOptions()
	}
	if opts.Renderer == nil {
		opts.Renderer = rendering.NewFileRenderer(opts.Config.TemplatesDir)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return opts
}

// Preview parses the resume and renders the site page without touching the homepage
func Preview(opts Options) (string, *types.ResumeDocument, error) {
	o := opts.withDefaults()
	return render(o)
}

// Run renders the site page, archives the current homepage and replaces it
func Run(opts Options) (*Outcome, error) {
	o := opts.withDefaults()

	page, doc, err := render(o)
	if err != nil {
		return nil, err
	}

	archived, err := archive.Publish(o.Config.HomepagePath, o.Config.ArchiveDir, page, o.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to publish homepage: %w", err)
	}

	if o.Config.Verbose {
		observability.NewPrinter(o.Out).PrintPublished(o.Config.HomepagePath, archived, len(page))
	}
	_, _ = fmt.Fprintf(o.Out, "All done! 🔮 %s\n", o.Config.HomepagePath)

	return &Outcome{
		Document:    doc,
		Page:        page,
		Homepage:    o.Config.HomepagePath,
		ArchivePath: archived,
	}, nil
}

func render(o Options) (string, *types.ResumeDocument, error) {
	content, err := os.ReadFile(o.Config.ResumePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read resume: %w", err)
	}

	printer := observability.NewPrinter(o.Out)
	result := parsing.ParseResume(string(content), o.Parse)
	if !result.OK() {
		_, _ = fmt.Fprintln(o.Out, "Can't find sections")
		printer.PrintNormalizedLines(result.Lines)
		return "", nil, fmt.Errorf("failed to parse resume %s: %w", o.Config.ResumePath, result.Err)
	}
	_, _ = fmt.Fprintln(o.Out, "Found sections!")

	if o.Config.Verbose {
		log.Printf("Parsed %d lines from %s", len(result.Lines), o.Config.ResumePath)
		printer.PrintResumeDocument(result.Document)
	}

	fragmentOpts := rendering.FragmentOptions{Sanitize: o.Config.Sanitize}
	page, err := rendering.Assemble(result.Document, o.Renderer, o.Config.TemplateName, fragmentOpts)
	if err != nil {
		return "", nil, err
	}

	if err := rendering.VerifyPage(page, sectionTokens(o.Parse.Headers)); err != nil {
		return "", nil, err
	}

	return page, result.Document, nil
}

func sectionTokens(headers []types.SectionHeader) []string {
	tokens := make([]string, len(headers))
	for i, h := range headers {
		_, tokens[i] = rendering.HeaderLabel(h)
	}
	return tokens
}

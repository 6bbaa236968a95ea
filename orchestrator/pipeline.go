package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/interview-pipeline/clients"
	cfg "github.com/maastricht-university/interview-pipeline/config"
	"github.com/maastricht-university/interview-pipeline/logging"
	"github.com/maastricht-university/interview-pipeline/report"
	"github.com/maastricht-university/interview-pipeline/rubric"
	"github.com/maastricht-university/interview-pipeline/sentiment"
	"github.com/maastricht-university/interview-pipeline/transcript"
)

type Pipeline struct {
	cfg      *cfg.Root
	log      logrus.FieldLogger
	http     *clients.HTTP
	analyzer *sentiment.Analyzer
	rubric   *rubric.Rubric
	roles    transcript.Roles
}

type Option func(*Pipeline)

func WithLogger(l logrus.FieldLogger) Option { return func(p *Pipeline) { p.log = l } }

// WithRoles overrides the role names found in transcript metadata.
func WithRoles(r transcript.Roles) Option { return func(p *Pipeline) { p.roles = r } }

func WithAnalyzer(a *sentiment.Analyzer) Option { return func(p *Pipeline) { p.analyzer = a } }

func WithRubric(r *rubric.Rubric) Option { return func(p *Pipeline) { p.rubric = r } }

// NewPipeline scores sentences with the remote polarity service when
// services.sentiment.url is set, and with VADER otherwise.
func NewPipeline(c *cfg.Root, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg:    c,
		log:    logging.Discard(),
		http:   clients.NewHTTP(cfg.DurSeconds(c.Services.TimeoutSeconds)),
		rubric: rubric.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	if p.analyzer == nil {
		split, err := sentiment.NewSplitter()
		if err != nil {
			return nil, fmt.Errorf("sentence splitter: %w", err)
		}
		var scorer sentiment.Scorer = sentiment.NewVader()
		if url := c.Services.Sentiment.URL; url != "" {
			scorer = clients.NewSentimentClient(p.http, url)
		}
		p.analyzer = sentiment.NewAnalyzer(scorer, split)
	}
	return p, nil
}

func (p *Pipeline) ingestOptions(name string) transcript.Options {
	return transcript.Options{
		Defaults: transcript.Roles{Candidate: p.cfg.Roles.Candidate, Interviewer: p.cfg.Roles.Interviewer},
		Override: p.roles,
		Log:      p.log.WithField("file", name),
	}
}

// Ingest loads and validates one transcript file.
func (p *Pipeline) Ingest(path string) (*transcript.Ingested, error) {
	doc, err := transcript.LoadFile(path)
	if err != nil {
		return nil, err
	}
	in, err := transcript.Ingest(doc, p.ingestOptions(filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// Sentiment aggregates both roles. A nil aggregate means the role never spoke.
func (p *Pipeline) Sentiment(ctx context.Context, in *transcript.Ingested) (candidate, interviewer *sentiment.Aggregate, err error) {
	if candidate, err = p.analyzer.Aggregate(ctx, in.Candidate); err != nil {
		return nil, nil, fmt.Errorf("candidate sentiment: %w", err)
	}
	if interviewer, err = p.analyzer.Aggregate(ctx, in.Interviewer); err != nil {
		return nil, nil, fmt.Errorf("interviewer sentiment: %w", err)
	}
	return candidate, interviewer, nil
}

// RunFile runs ingestion, sentiment, rubric scoring and synthesis for one file.
// Rubric failures are carried in the result, not returned.
func (p *Pipeline) RunFile(ctx context.Context, path string) (*report.Combined, error) {
	name := filepath.Base(path)
	in, err := p.Ingest(path)
	if err != nil {
		return nil, err
	}
	candidate, interviewer, err := p.Sentiment(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	analysis := p.rubric.Evaluate(in.FullText())

	c := report.Combine(name, in, candidate, interviewer, analysis)
	c.Stats = turnStats(in)
	syn := report.Synthesize(c)
	c.Synthesis = &syn

	p.log.WithFields(logrus.Fields{
		"file":      name,
		"pass_fail": analysis.Verdict,
		"candidate": c.CandidateSentiment.OverallSentiment,
	}).Info("transcript analyzed")

	p.radar(ctx, c)
	return &c, nil
}

func (p *Pipeline) radar(ctx context.Context, c report.Combined) {
	url := p.cfg.Services.Visualization.URL
	if url == "" || c.Analysis.Failed() {
		return
	}
	req := clients.RadarFromResult(c.Analysis, c.Roles.Candidate, p.cfg.Paths.Outputs)
	resp, err := p.http.GenerateRadar(ctx, url, req)
	if err != nil {
		p.log.WithField("file", c.TranscriptName).WithError(err).Warn("radar chart not generated")
		return
	}
	p.log.WithFields(logrus.Fields{"file": c.TranscriptName, "path": resp.Path}).Debug("radar chart generated")
}

// RunDir processes every supported file in dir in lexical order. A failing
// transcript is logged and recorded; the rest still run. The context is
// checked between transcripts.
func (p *Pipeline) RunDir(ctx context.Context, dir string) (*BatchReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read transcripts dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && transcript.Supported(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no transcripts found in %s", dir)
	}

	out := &BatchReport{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		c, err := p.RunFile(ctx, path)
		if err != nil {
			p.log.WithField("file", filepath.Base(path)).WithError(err).Warn("transcript skipped")
			out.Failures = append(out.Failures, Failure{Path: path, Err: err.Error()})
			continue
		}
		out.Results = append(out.Results, *c)
	}
	p.log.WithFields(logrus.Fields{"ok": len(out.Results), "failed": len(out.Failures)}).Info("batch finished")
	return out, nil
}

package wordlists

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/wordlists/internal/app/wordlists/lemma"
	"github.com/heartmarshall/wordlists/internal/app/wordlists/plural"
	"github.com/heartmarshall/wordlists/internal/app/wordlists/spelling"
	"github.com/heartmarshall/wordlists/internal/config"
	"github.com/heartmarshall/wordlists/internal/domain"
	"github.com/heartmarshall/wordlists/pkg/ctxutil"
)

// Phase names.
const (
	PhaseSpelling = "spelling"
	PhaseLemma    = "lemma"
	PhasePlural   = "plural"
)

// allPhases defines the canonical execution order.
var allPhases = []string{PhaseSpelling, PhaseLemma, PhasePlural}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Read     int
	Written  int
	Replaced int
	Dropped  int
	Appended int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the word list phases against a ListStore.
type Pipeline struct {
	log     *slog.Logger
	store   ListStore
	cfg     config.Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store ListStore, cfg config.Config) *Pipeline {
	return &Pipeline{
		log:     log,
		store:   store,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded an error.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// ParsePhases splits a comma-separated phase list. An empty string selects
// all phases. Unknown names yield ErrUnknownPhase.
func ParsePhases(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var phases []string
	for _, ph := range strings.Split(s, ",") {
		ph = strings.ToLower(strings.TrimSpace(ph))
		if ph == "" {
			continue
		}
		if !isPhase(ph) {
			return nil, fmt.Errorf("%q: %w", ph, domain.ErrUnknownPhase)
		}
		phases = append(phases, ph)
	}
	return phases, nil
}

func isPhase(name string) bool {
	for _, ph := range allPhases {
		if ph == name {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, in canonical order. A failed phase is recorded and later phases still run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	// Step 1: Determine which phases to run.
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			if !isPhase(ph) {
				return fmt.Errorf("%q: %w", ph, domain.ErrUnknownPhase)
			}
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	// Step 2: Execute phases in order.
	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline aborted before %s: %w", phase, err)
		}

		phaseCtx := ctxutil.WithPhase(ctx, phase)
		start := time.Now()
		p.log.InfoContext(phaseCtx, "starting phase", slog.Bool("dry_run", p.cfg.Run.DryRun))

		var result PhaseResult
		switch phase {
		case PhaseSpelling:
			result = p.runSpelling(phaseCtx)
		case PhaseLemma:
			result = p.runLemma(phaseCtx)
		case PhasePlural:
			result = p.runPlural(phaseCtx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.WarnContext(phaseCtx, "phase failed",
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.InfoContext(phaseCtx, "phase completed",
				slog.Int("read", result.Read),
				slog.Int("written", result.Written),
				slog.Int("replaced", result.Replaced),
				slog.Int("dropped", result.Dropped),
				slog.Int("appended", result.Appended),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	// Step 3: Summary log.
	p.log.InfoContext(ctx, "pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runSpelling rewrites the answer and guess lists to the target spelling and
// appends target-only words to the guesses.
func (p *Pipeline) runSpelling(ctx context.Context) PhaseResult {
	c := p.cfg.Spelling

	mapping, err := p.store.ReadMapping(c.MappingPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read mapping: %w", err)}
	}
	targets, err := p.store.ReadMapping(c.TargetWordsPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read target words: %w", err)}
	}
	answers, err := p.store.ReadLines(c.AnswersPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read answers: %w", err)}
	}
	guesses, err := p.store.ReadLines(c.GuessesPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read guesses: %w", err)}
	}

	m := domain.NewSpellingMap(mapping)
	p.log.InfoContext(ctx, "spelling map loaded",
		slog.Int("entries", len(m)),
		slog.Int("target_words", len(targets)),
	)

	p.log.InfoContext(ctx, "==> Replacing answers", slog.String("path", c.AnswersPath))
	localAnswers := spelling.Localize(answers, m, c.WordLength)
	p.logDiagnostics(ctx, localAnswers.Diagnostics)

	p.log.InfoContext(ctx, "==> Replacing guesses", slog.String("path", c.GuessesPath))
	localGuesses := spelling.Localize(guesses, m, c.WordLength)
	p.logDiagnostics(ctx, localGuesses.Diagnostics)

	// Target words already guessable before or after localization are not appended.
	extra := spelling.Supplement(domain.MappingKeys(targets), c.WordLength, guesses, localGuesses.Words)
	for _, w := range extra {
		p.log.InfoContext(ctx, "word appended",
			slog.String("word", w),
			slog.String("action", string(domain.ActionAppended)),
		)
	}

	result := PhaseResult{
		Read:     len(answers) + len(guesses),
		Replaced: localAnswers.Replaced + localGuesses.Replaced,
		Dropped:  localAnswers.Dropped + localGuesses.Dropped,
		Appended: len(extra),
	}

	if p.cfg.Run.DryRun {
		return result
	}

	n, err := p.store.WriteLines(c.AnswersOutPath, localAnswers.Words)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("write answers: %w", err)}
	}
	result.Written += n

	finalGuesses := append(localGuesses.Words, extra...)
	n, err = p.store.WriteLines(c.GuessesOutPath, finalGuesses)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("write guesses: %w", err)}
	}
	result.Written += n

	p.reportLineCounts(ctx, c.AnswersPath, c.AnswersOutPath, c.GuessesPath, c.GuessesOutPath)
	return result
}

// runLemma lemmatizes the corpus and keeps the distinct lemmas of the
// configured length.
func (p *Pipeline) runLemma(ctx context.Context) PhaseResult {
	c := p.cfg.Lemma

	corpus, err := p.store.ReadPattern(c.CorpusPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read corpus: %w", err)}
	}

	table, err := p.loadLemmaTable(ctx, c.TablePath)
	if err != nil {
		return PhaseResult{Err: err}
	}

	res, err := lemma.Extract(ctx, corpus, table, lemma.Options{
		Length:        c.WordLength,
		Ligatures:     lemma.NewLigatureReplacer(c.LigaturePairs()...),
		ProgressEvery: c.ProgressEvery,
		OnProgress: func(done, total int) {
			p.log.InfoContext(ctx, "progress",
				slog.Int("done", done),
				slog.Int("total", total),
				slog.String("percent", percent(done, total)),
			)
		},
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("extract lemmas: %w", err)}
	}
	p.log.InfoContext(ctx, "lemmas extracted",
		slog.Int("distinct", res.Distinct),
		slog.Int("kept", len(res.Lemmas)),
		slog.Int("rejected", res.Rejected),
	)

	result := PhaseResult{Read: res.Inputs, Dropped: res.Rejected}
	if p.cfg.Run.DryRun {
		return result
	}

	n, err := p.store.WriteLines(c.OutputPath, res.Lemmas)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("write lemmas: %w", err)}
	}
	result.Written = n

	p.reportLineCounts(ctx, c.OutputPath)
	return result
}

func (p *Pipeline) loadLemmaTable(ctx context.Context, path string) (*lemma.Table, error) {
	f, err := p.store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lemma table: %w", err)
	}
	defer f.Close()

	table, stats, err := lemma.ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("parse lemma table: %w", err)
	}
	p.log.InfoContext(ctx, "lemma table parsed",
		slog.Int("forms", stats.Forms),
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("ambiguous", stats.Ambiguous),
	)
	return table, nil
}

// runPlural drops plural entries whose singular is also listed.
func (p *Pipeline) runPlural(ctx context.Context) PhaseResult {
	c := p.cfg.Plural

	words, err := p.store.ReadLines(c.InputPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read words: %w", err)}
	}

	res := plural.Dedupe(words, plural.Rules{
		PluralSuffix:     c.PluralSuffix,
		SingularSuffixes: c.SingularSuffixes,
		Extras:           c.Extras(),
	})
	p.logDiagnostics(ctx, res.Diagnostics)

	result := PhaseResult{
		Read:     len(words),
		Appended: res.Appended,
		Skipped:  res.Skipped,
		Dropped:  res.Removed,
	}
	if p.cfg.Run.DryRun {
		return result
	}

	n, err := p.store.WriteLines(c.OutputPath, res.Words)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("write words: %w", err)}
	}
	result.Written = n

	p.reportLineCounts(ctx, c.InputPath, c.OutputPath)
	return result
}

func (p *Pipeline) logDiagnostics(ctx context.Context, diags []domain.Diagnostic) {
	for _, d := range diags {
		attrs := []slog.Attr{
			slog.String("word", d.Word),
			slog.String("action", string(d.Action)),
		}
		if d.Replacement != "" {
			attrs = append(attrs, slog.String("replacement", d.Replacement))
		}
		if d.Reason != "" {
			attrs = append(attrs, slog.String("reason", d.Reason))
		}
		p.log.LogAttrs(ctx, slog.LevelInfo, "word "+string(d.Action), attrs...)
	}
}

// reportLineCounts logs the line count of each file. Count failures are
// logged and do not fail the phase.
func (p *Pipeline) reportLineCounts(ctx context.Context, paths ...string) {
	for _, path := range paths {
		n, err := p.store.CountLines(path)
		if err != nil {
			p.log.WarnContext(ctx, "line count failed",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			continue
		}
		p.log.InfoContext(ctx, "line count", slog.String("path", path), slog.Int("lines", n))
	}
}

func percent(done, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(done)/float64(total)*100)
}

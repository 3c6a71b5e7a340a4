package schedula

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/archivista/schedula/model"
	"github.com/archivista/schedula/normalize"
)

// Processor runs extraction strategies over schedule documents and arbitrates
// between their results. It is safe for concurrent use.
type Processor struct {
	cfg    Config
	norm   *normalize.Normalizer
	scorer *Scorer
	logger *slog.Logger
}

// New creates a Processor. The configuration must name a jurisdiction
// profile.
func New(cfg Config) (*Processor, error) {
	if cfg.Profile == nil {
		return nil, errors.New("schedula: config requires a profile")
	}
	cfg.defaults()
	return &Processor{
		cfg:    cfg,
		norm:   normalize.New(cfg.Profile),
		scorer: NewScorer(cfg.Profile),
		logger: cfg.Logger,
	}, nil
}

// Process runs the configured strategies against one document in priority
// order and returns the highest-scoring result. Arbitration stops early once
// a strategy yields a penalty-free, non-empty record set. An exact score tie
// prefers the layout strategy.
//
// A nil result means the document yielded no usable records; that is a
// normal terminal state, reported through warnings rather than an error.
// Strategy failures likewise become warnings and score as zero records.
func (p *Processor) Process(ctx context.Context, doc *model.Document) (*model.Result, []Warning) {
	var warnings []Warning
	var best *model.Result

	for _, strat := range p.cfg.Strategies {
		res, err := p.runStrategy(ctx, strat, doc)
		if err != nil {
			warnings = append(warnings, Warning{
				Code:    WarnStrategyFailed,
				Message: fmt.Sprintf("%s: %v", strat.Name(), err),
			})
			p.logger.Warn("strategy failed",
				"schedule", doc.Meta.ScheduleID, "strategy", strat.Name(), "error", err)
			continue
		}
		p.logger.Debug("strategy attempted",
			"schedule", doc.Meta.ScheduleID, "strategy", strat.Name(),
			"records", len(res.Records), "score", res.Score)

		if better(res, best) {
			best = res
		}
		if penaltyFree(res) {
			p.logger.Debug("early termination, penalty-free extraction",
				"schedule", doc.Meta.ScheduleID, "strategy", strat.Name())
			break
		}
	}

	if best == nil || len(best.Records) == 0 || best.Score <= 0 {
		warnings = append(warnings, Warning{
			Code:    WarnNoOutput,
			Message: "no valid records found across attempted strategies",
		})
		p.logger.Warn("no valid records found", "schedule", doc.Meta.ScheduleID)
		return nil, warnings
	}

	p.logger.Info("processed",
		"schedule", doc.Meta.ScheduleID, "records", len(best.Records),
		"winner", best.Strategy, "score", best.Score)
	return best, warnings
}

// runStrategy executes one strategy and normalizes, stamps, and scores its
// output. A panic inside the strategy surfaces as an error.
func (p *Processor) runStrategy(ctx context.Context, strat Strategy, doc *model.Document) (res *model.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	raws, err := strat.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	checked := p.cfg.Now().Format("2006-01-02")
	records := make([]model.Record, len(raws))
	for i, raw := range raws {
		rec := p.norm.Normalize(raw)
		rec.LastChecked = checked
		records[i] = rec
	}

	return &model.Result{
		Records:  records,
		Strategy: strat.Name(),
		Score:    p.scorer.Score(records),
	}, nil
}

// better reports whether the candidate result beats the best so far.
func better(candidate, best *model.Result) bool {
	if best == nil {
		return true
	}
	if candidate.Score != best.Score {
		return candidate.Score > best.Score
	}
	return candidate.Strategy == StrategyLayout && best.Strategy != StrategyLayout
}

// penaltyFree reports whether a non-empty result scored without a single
// penalty. Year bonuses can lift a score above the count baseline, so the
// check is a floor rather than an equality.
func penaltyFree(res *model.Result) bool {
	return len(res.Records) > 0 && res.Score >= len(res.Records)*10
}

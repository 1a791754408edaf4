package moderation

import (
	"context"
	"log"
	"time"

	"union-portal/internal/config"
	"union-portal/internal/domain"
)

const (
	OnErrorAccept = "accept"
	OnErrorReject = "reject"
)

// Gate guards everything user-submitted before it reaches storage. It wraps
// the classifier with a timeout, a bounded retry, and the on-error policy:
// fail-open accepts when the classifier is unreachable (availability over
// strict moderation), fail-closed rejects.
type Gate struct {
	classifier Classifier
	onError    string
	timeout    time.Duration
	retries    int
}

func NewGate(classifier Classifier, cfg *config.Config) *Gate {
	onError := cfg.ModerationOnError
	if onError != OnErrorReject {
		onError = OnErrorAccept
	}
	return &Gate{
		classifier: classifier,
		onError:    onError,
		timeout:    cfg.ModerationTimeout,
		retries:    cfg.ModerationRetries,
	}
}

func (g *Gate) Check(ctx context.Context, body string) domain.ModerationDecision {
	var lastErr error

	for attempt := 0; attempt <= g.retries; attempt++ {
		decision, err := g.classify(ctx, body)
		if err == nil {
			return decision
		}
		lastErr = err
	}

	log.Printf("Moderation classifier unavailable, applying %s policy: %v", g.onError, lastErr)

	if g.onError == OnErrorReject {
		return domain.ModerationDecision{
			IsSafe: false,
			Reason: "moderation is temporarily unavailable, please try again later",
		}
	}
	return domain.ModerationDecision{IsSafe: true}
}

func (g *Gate) classify(ctx context.Context, body string) (domain.ModerationDecision, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.classifier.Classify(ctx, body)
}

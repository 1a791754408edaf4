package moderation

import (
	"context"
	"fmt"
	"strings"

	"union-portal/internal/config"
	"union-portal/internal/domain"
	"union-portal/internal/pkg/genai"
)

// Classifier decides whether a piece of user text is safe to publish.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.ModerationDecision, error)
}

// GenAIClassifier runs text through the generative model's safety filters.
// The model is asked to echo the text back; if any of the four configured
// category thresholds trips on the way in or out, the text is unsafe.
type GenAIClassifier struct {
	client *genai.Client
	safety []genai.SafetySetting
}

func NewGenAIClassifier(client *genai.Client, cfg *config.Config) *GenAIClassifier {
	return &GenAIClassifier{
		client: client,
		safety: []genai.SafetySetting{
			{Category: genai.CategoryHateSpeech, Threshold: cfg.HateSpeechThreshold},
			{Category: genai.CategoryDangerousContent, Threshold: cfg.DangerousThreshold},
			{Category: genai.CategoryHarassment, Threshold: cfg.HarassmentThreshold},
			{Category: genai.CategorySexuallyExplicit, Threshold: cfg.SexuallyExplicitThresh},
		},
	}
}

const classifyPrompt = "Repeat the following user message exactly as written, with no commentary:\n\n%s"

func (c *GenAIClassifier) Classify(ctx context.Context, text string) (domain.ModerationDecision, error) {
	result, err := c.client.GenerateContent(ctx, fmt.Sprintf(classifyPrompt, text), c.safety)
	if err != nil {
		return domain.ModerationDecision{}, err
	}

	if result.Blocked {
		return domain.ModerationDecision{
			IsSafe: false,
			Reason: reasonFor(result.FlaggedCategories),
		}, nil
	}

	return domain.ModerationDecision{IsSafe: true}, nil
}

func reasonFor(categories []string) string {
	labels := map[string]string{
		genai.CategoryHateSpeech:       "hate speech",
		genai.CategoryDangerousContent: "dangerous content",
		genai.CategoryHarassment:       "harassment",
		genai.CategorySexuallyExplicit: "sexually explicit content",
	}

	var named []string
	for _, cat := range categories {
		if label, ok := labels[cat]; ok {
			named = append(named, label)
		}
	}
	if len(named) == 0 {
		return "contains offensive language"
	}
	return "contains " + strings.Join(named, ", ")
}

package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"union-portal/internal/domain"
	"union-portal/internal/pkg/genai"
)

var (
	ErrNoResult           = errors.New("no quiz result for this client")
	ErrAdvisorUnavailable = errors.New("advisor is unavailable")
)

const maxHistoryTurns = 20

type Service interface {
	Definition() *domain.QuizDefinition
	Submit(ctx context.Context, input domain.SubmitQuizInput) (*domain.QuizResult, error)
	Chat(ctx context.Context, input domain.ChatInput) (*domain.ChatReply, error)
	State(ctx context.Context, clientID string) (*domain.ClientState, error)
}

type service struct {
	definition *domain.QuizDefinition
	ai         *genai.Client
	redis      *redis.Client
	stateTTL   time.Duration
}

func NewService(definition *domain.QuizDefinition, ai *genai.Client, redis *redis.Client, stateTTL time.Duration) Service {
	return &service{
		definition: definition,
		ai:         ai,
		redis:      redis,
		stateTTL:   stateTTL,
	}
}

func (s *service) Definition() *domain.QuizDefinition {
	return s.definition
}

// Submit scores the answers and stores the result in the client's state
// blob. The state is keyed by a client-generated id; the server keeps it
// only so the advisor can see the profile on later chat turns.
func (s *service) Submit(ctx context.Context, input domain.SubmitQuizInput) (*domain.QuizResult, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	result := Score(s.definition, input.Answers)

	state, err := s.loadState(ctx, input.ClientID)
	if err != nil || state == nil {
		state = &domain.ClientState{ClientID: input.ClientID}
	}
	state.Result = result
	s.saveState(ctx, state)

	return result, nil
}

// Score counts, per trait, how many selected options carry that trait and
// picks the trait with the highest count. Ties resolve to whichever trait
// is declared first in the quiz definition.
func Score(def *domain.QuizDefinition, answers []domain.QuizAnswer) *domain.QuizResult {
	questions := make(map[int]domain.QuizQuestion, len(def.Questions))
	for _, q := range def.Questions {
		questions[q.ID] = q
	}

	scores := make(map[string]int, len(def.Traits))
	for _, t := range def.Traits {
		scores[t.Key] = 0
	}

	for _, answer := range answers {
		q, ok := questions[answer.QuestionID]
		if !ok || answer.Option < 0 || answer.Option >= len(q.Options) {
			continue
		}
		trait := q.Options[answer.Option].Trait
		if _, known := scores[trait]; known {
			scores[trait]++
		}
	}

	best := def.Traits[0]
	for _, t := range def.Traits[1:] {
		if scores[t.Key] > scores[best.Key] {
			best = t
		}
	}

	return &domain.QuizResult{Trait: best, Scores: scores}
}

const advisorPrompt = `You are a friendly advisor for a university student union.
The student completed a personality quiz and matched the "%s" profile: %s

Answer the student's question in a warm, concise tone, suggesting which union
departments might suit them. Student's message:

%s`

// Chat answers a student's question through the generative model, templated
// with their quiz profile. Requires a prior Submit for the same client id.
func (s *service) Chat(ctx context.Context, input domain.ChatInput) (*domain.ChatReply, error) {
	clientID := strings.TrimSpace(input.ClientID)
	message := strings.TrimSpace(input.Message)
	if clientID == "" || message == "" {
		var issues []domain.FieldIssue
		if clientID == "" {
			issues = append(issues, domain.FieldIssue{Field: "client_id", Message: "client id is required"})
		}
		if message == "" {
			issues = append(issues, domain.FieldIssue{Field: "message", Message: "message is required"})
		}
		return nil, domain.NewValidationError(issues...)
	}

	state, err := s.loadState(ctx, clientID)
	if err != nil || state == nil || state.Result == nil {
		return nil, ErrNoResult
	}

	prompt := fmt.Sprintf(advisorPrompt, state.Result.Trait.Name, state.Result.Trait.Summary, message)
	result, err := s.ai.GenerateContent(ctx, prompt, nil)
	if err != nil || result.Blocked {
		return nil, ErrAdvisorUnavailable
	}

	now := time.Now().UTC()
	state.History = append(state.History,
		domain.ChatTurn{Role: "student", Message: message, At: now},
		domain.ChatTurn{Role: "advisor", Message: result.Text, At: now},
	)
	if len(state.History) > maxHistoryTurns {
		state.History = state.History[len(state.History)-maxHistoryTurns:]
	}
	s.saveState(ctx, state)

	return &domain.ChatReply{Reply: result.Text}, nil
}

func (s *service) State(ctx context.Context, clientID string) (*domain.ClientState, error) {
	state, err := s.loadState(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return &domain.ClientState{ClientID: clientID}, nil
	}
	return state, nil
}

func (s *service) validate(input domain.SubmitQuizInput) error {
	var issues []domain.FieldIssue
	if strings.TrimSpace(input.ClientID) == "" {
		issues = append(issues, domain.FieldIssue{Field: "client_id", Message: "client id is required"})
	}
	if len(input.Answers) == 0 {
		issues = append(issues, domain.FieldIssue{Field: "answers", Message: "at least one answer is required"})
	}
	if len(issues) > 0 {
		return domain.NewValidationError(issues...)
	}
	return nil
}

func stateKey(clientID string) string {
	return "quiz:state:" + clientID
}

func (s *service) loadState(ctx context.Context, clientID string) (*domain.ClientState, error) {
	if s.redis == nil {
		return nil, nil
	}
	cached, err := s.redis.Get(ctx, stateKey(clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state domain.ClientState
	if err := json.Unmarshal([]byte(cached), &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

func (s *service) saveState(ctx context.Context, state *domain.ClientState) {
	if s.redis == nil {
		return
	}
	if stateJSON, err := json.Marshal(state); err == nil {
		_ = s.redis.Set(ctx, stateKey(state.ClientID), stateJSON, s.stateTTL).Err()
	}
}

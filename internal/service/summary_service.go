package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"portal/backend/internal/logger"
	"portal/backend/internal/model"
	"portal/backend/internal/repository"
	"portal/backend/internal/service/ai"
)

// maxEntryExcerpt caps how much of a single entry goes into the corpus.
const maxEntryExcerpt = 2000

// SummaryEntry is one plain-text accomplishment entry inside a window.
type SummaryEntry struct {
	StartWeekDate string `json:"start_week_date"`
	EndWeekDate   string `json:"end_week_date"`
	Text          string `json:"text"`
}

// SummaryUser bundles a user's entries for summarization.
type SummaryUser struct {
	Badge   int64          `json:"badge"`
	Name    string         `json:"name"`
	Entries []SummaryEntry `json:"entries"`
}

// SummaryRequest asks for a roll-up over the inclusive [From, To] window.
// When Users is empty the service assembles the bundles itself from the
// store.
type SummaryRequest struct {
	From              string        `json:"from"`
	To                string        `json:"to"`
	Users             []SummaryUser `json:"users"`
	IncludeTeamThemes bool          `json:"include_team_themes"`
}

// SummarySubject is one person's normalized summary.
type SummarySubject struct {
	Badge      int64    `json:"badge"`
	Name       string   `json:"name"`
	SummaryMD  string   `json:"summary_md"`
	Highlights []string `json:"highlights,omitempty"`
	Blockers   []string `json:"blockers,omitempty"`
	NextFocus  []string `json:"next_focus,omitempty"`
}

// SummaryResult is the canonical roll-up shape.
type SummaryResult struct {
	Subjects []SummarySubject `json:"subjects"`
	Themes   []string         `json:"themes,omitempty"`
}

type SummaryService interface {
	// Summarize generates and normalizes a team roll-up. Callers see
	// either a canonical result or ErrSummarization.
	Summarize(ctx context.Context, req SummaryRequest) (SummaryResult, error)
}

type summaryService struct {
	users           repository.UserRepository
	accomplishments repository.AccomplishmentRepository
	settings        repository.SettingsRepository
	rateLimiter     *ai.RateLimiter
	newProvider     func(ai.Config) (ai.Provider, error)
}

func NewSummaryService(
	users repository.UserRepository,
	accomplishments repository.AccomplishmentRepository,
	settings repository.SettingsRepository,
	rateLimiter *ai.RateLimiter,
) SummaryService {
	return &summaryService{
		users:           users,
		accomplishments: accomplishments,
		settings:        settings,
		rateLimiter:     rateLimiter,
		newProvider:     ai.NewProvider,
	}
}

func (s *summaryService) Summarize(ctx context.Context, req SummaryRequest) (SummaryResult, error) {
	if !validDate(req.From) || !validDate(req.To) || req.From > req.To {
		return SummaryResult{}, ErrInvalid
	}

	if len(req.Users) == 0 {
		assembled, err := s.assembleUsers(ctx, req.From, req.To)
		if err != nil {
			return SummaryResult{}, err
		}
		req.Users = assembled
	}

	cfg, err := s.getAIConfig(ctx)
	if err != nil {
		return SummaryResult{}, err
	}
	provider, err := s.newProvider(cfg)
	if err != nil {
		logger.Warn("ai provider create failed", "module", "service", "action", "summarize", "resource", "summary", "result", "failed", "provider", cfg.Provider, "error", err)
		return SummaryResult{}, fmt.Errorf("create provider: %w", err)
	}

	if err := s.rateLimiter.Wait(ctx); err != nil {
		return SummaryResult{}, fmt.Errorf("rate limit: %w", err)
	}

	systemPrompt := ai.GetRollUpPrompt()
	userPrompt := ai.GetRollUpUserPrompt(req.From, req.To, req.IncludeTeamThemes, buildCorpus(req))

	genCtx, cancel := context.WithTimeout(ctx, ai.DefaultTimeout)
	defer cancel()

	// Strict mode first when the backend supports it; the reply still
	// goes through normalization so a lying backend cannot slip through.
	reply, err := provider.CompleteStructured(genCtx, systemPrompt, userPrompt, ai.RollUpSchema())
	if err == nil {
		if result, nerr := normalizeSummary(reply); nerr == nil {
			logger.Info("summary generated", "module", "service", "action", "summarize", "resource", "summary", "result", "ok", "provider", cfg.Provider, "model", cfg.Model, "subjects", len(result.Subjects), "strict", true)
			return result, nil
		} else {
			logger.Warn("strict summary unrecognized, retrying free-form", "module", "service", "action", "summarize", "resource", "summary", "result", "failed", "error", nerr)
		}
	} else if !errors.Is(err, ai.ErrStructuredUnsupported) {
		logger.Warn("strict summary request failed, retrying free-form", "module", "service", "action", "summarize", "resource", "summary", "result", "failed", "error", err)
	}

	// One free-form fallback attempt.
	reply, err = provider.Complete(genCtx, systemPrompt, userPrompt)
	if err != nil {
		logger.Error("summary generation failed", "module", "service", "action", "summarize", "resource", "summary", "result", "failed", "provider", cfg.Provider, "error", err)
		return SummaryResult{}, ErrSummarization
	}

	result, err := normalizeSummary(reply)
	if err != nil {
		logger.Error("summary reply unrecognized", "module", "service", "action", "summarize", "resource", "summary", "result", "failed", "provider", cfg.Provider, "error", err)
		return SummaryResult{}, err
	}

	logger.Info("summary generated", "module", "service", "action", "summarize", "resource", "summary", "result", "ok", "provider", cfg.Provider, "model", cfg.Model, "subjects", len(result.Subjects), "strict", false)
	return result, nil
}

// assembleUsers loads every user plus their entries overlapping the
// window, fetched concurrently.
func (s *summaryService) assembleUsers(ctx context.Context, from, to string) ([]SummaryUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	bundles := make([]SummaryUser, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, u := range users {
		g.Go(func() error {
			records, err := s.accomplishments.ListByUserInWindow(gctx, u.Badge, from, to)
			if err != nil {
				return fmt.Errorf("list accomplishments for %d: %w", u.Badge, err)
			}
			bundles[i] = toSummaryUser(u, records)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

func toSummaryUser(u model.User, records []model.Accomplishment) SummaryUser {
	bundle := SummaryUser{
		Badge: u.Badge,
		Name:  strings.TrimSpace(u.FirstName + " " + u.LastName),
	}
	for _, rec := range records {
		text := ai.ToPlainText(rec.Accomplishments)
		if text == "" {
			continue
		}
		bundle.Entries = append(bundle.Entries, SummaryEntry{
			StartWeekDate: rec.StartWeekDate,
			EndWeekDate:   rec.EndWeekDate,
			Text:          text,
		})
	}
	return bundle
}

// buildCorpus renders the per-user data block fed to the model.
func buildCorpus(req SummaryRequest) string {
	var sb strings.Builder
	for i, u := range req.Users {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "User: %s (#%d)\n", u.Name, u.Badge)
		fmt.Fprintf(&sb, "Window: %s → %s\n", req.From, req.To)
		if len(u.Entries) == 0 {
			sb.WriteString("- (none)\n")
			continue
		}
		for _, e := range u.Entries {
			fmt.Fprintf(&sb, "- (%s→%s) %s\n", e.StartWeekDate, e.EndWeekDate, truncate(e.Text, maxEntryExcerpt))
		}
	}
	return sb.String()
}

func (s *summaryService) getAIConfig(ctx context.Context) (ai.Config, error) {
	var cfg ai.Config

	settings, err := s.settings.GetByPrefix(ctx, "ai.")
	if err != nil {
		return cfg, fmt.Errorf("get AI settings: %w", err)
	}

	settingsMap := make(map[string]string, len(settings))
	for _, st := range settings {
		settingsMap[st.Key] = st.Value
	}

	cfg.Provider = settingsMap["ai.provider"]
	if cfg.Provider == "" {
		cfg.Provider = ai.ProviderOpenAI
	}
	cfg.APIKey = settingsMap["ai.api_key"]
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("AI API key is not configured")
	}
	cfg.BaseURL = settingsMap["ai.base_url"]
	cfg.Model = settingsMap["ai.model"]
	if cfg.Model == "" {
		return cfg, fmt.Errorf("AI model is not configured")
	}
	return cfg, nil
}

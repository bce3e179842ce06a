package service

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal/backend/internal/model"
	"portal/backend/internal/repository"
	"portal/backend/internal/repository/mock"
	"portal/backend/internal/service/ai"
)

type stubProvider struct {
	structuredReply string
	structuredErr   error
	completeReply   string
	completeErr     error
	completeCalls   int
}

func (p *stubProvider) Test(ctx context.Context) (string, error) { return "ok", nil }
func (p *stubProvider) Name() string                             { return "stub" }

func (p *stubProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	p.completeCalls++
	return p.completeReply, p.completeErr
}

func (p *stubProvider) CompleteStructured(ctx context.Context, systemPrompt, content string, schema ai.StructuredSchema) (string, error) {
	return p.structuredReply, p.structuredErr
}

type fakeSettings struct {
	values map[string]string
}

func (f *fakeSettings) Get(ctx context.Context, key string) (*model.Setting, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	return &model.Setting{Key: key, Value: v}, nil
}

func (f *fakeSettings) Set(ctx context.Context, key, value string) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	return nil
}

func (f *fakeSettings) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	var out []model.Setting
	for k, v := range f.values {
		if strings.HasPrefix(k, prefix) {
			out = append(out, model.Setting{Key: k, Value: v})
		}
	}
	return out, nil
}

func (f *fakeSettings) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func aiSettings() *fakeSettings {
	return &fakeSettings{values: map[string]string{
		"ai.provider": "openai",
		"ai.api_key":  "test-key",
		"ai.model":    "gpt-4o",
	}}
}

func newSummaryServiceForTest(t *testing.T, users repository.UserRepository, accomplishments repository.AccomplishmentRepository, provider ai.Provider) SummaryService {
	t.Helper()
	svc := NewSummaryService(users, accomplishments, aiSettings(), ai.NewRateLimiter(100)).(*summaryService)
	svc.newProvider = func(ai.Config) (ai.Provider, error) { return provider, nil }
	return svc
}

func singleUserRequest() SummaryRequest {
	return SummaryRequest{
		From: "2025-08-18",
		To:   "2025-08-24",
		Users: []SummaryUser{
			{Badge: 96880, Name: "Trung", Entries: []SummaryEntry{
				{StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Text: "Shipped billing"},
			}},
		},
	}
}

func TestSummaryService_StructuredReplyAccepted(t *testing.T) {
	provider := &stubProvider{
		structuredReply: `{"subjects":[{"badge":96880,"name":"Trung","summary_md":"- shipped billing"}]}`,
	}
	svc := newSummaryServiceForTest(t, nil, nil, provider)

	result, err := svc.Summarize(context.Background(), singleUserRequest())
	require.NoError(t, err)
	require.Len(t, result.Subjects, 1)
	require.Equal(t, int64(96880), result.Subjects[0].Badge)
	require.Zero(t, provider.completeCalls)
}

func TestSummaryService_StructuredUnsupportedFallsBack(t *testing.T) {
	provider := &stubProvider{
		structuredErr: ai.ErrStructuredUnsupported,
		completeReply: `Sure! {"subjects":[{"badge":1,"name":"A","summary_md":"- ok"}]}`,
	}
	svc := newSummaryServiceForTest(t, nil, nil, provider)

	result, err := svc.Summarize(context.Background(), singleUserRequest())
	require.NoError(t, err)
	require.Len(t, result.Subjects, 1)
	require.Equal(t, 1, provider.completeCalls)
}

func TestSummaryService_MalformedStructuredRetriesOnce(t *testing.T) {
	provider := &stubProvider{
		structuredReply: `{"foo":"bar"}`,
		completeReply:   `{"subjects":[{"badge":2,"name":"B","summary_md":"- fine"}]}`,
	}
	svc := newSummaryServiceForTest(t, nil, nil, provider)

	result, err := svc.Summarize(context.Background(), singleUserRequest())
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Subjects[0].Badge)
	require.Equal(t, 1, provider.completeCalls)
}

func TestSummaryService_BothAttemptsMalformed(t *testing.T) {
	provider := &stubProvider{
		structuredReply: `{"foo":"bar"}`,
		completeReply:   `still not a roll-up`,
	}
	svc := newSummaryServiceForTest(t, nil, nil, provider)

	_, err := svc.Summarize(context.Background(), singleUserRequest())
	require.ErrorIs(t, err, ErrSummarization)
}

func TestSummaryService_InvalidWindow(t *testing.T) {
	svc := newSummaryServiceForTest(t, nil, nil, &stubProvider{})

	_, err := svc.Summarize(context.Background(), SummaryRequest{From: "2025-08-24", To: "2025-08-18"})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Summarize(context.Background(), SummaryRequest{From: "not-a-date", To: "2025-08-24"})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestSummaryService_MissingAPIKey(t *testing.T) {
	svc := NewSummaryService(nil, nil, &fakeSettings{values: map[string]string{"ai.model": "gpt-4o"}}, ai.NewRateLimiter(100))

	_, err := svc.Summarize(context.Background(), singleUserRequest())
	require.ErrorContains(t, err, "API key")
}

func TestSummaryService_AssemblesUsersFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	accomplishments := mock.NewMockAccomplishmentRepository(ctrl)

	users.EXPECT().List(gomock.Any()).Return([]model.User{
		{Badge: 1, FirstName: "Ada", LastName: "L"},
		{Badge: 2, FirstName: "Brian", LastName: "K"},
	}, nil)
	accomplishments.EXPECT().ListByUserInWindow(gomock.Any(), int64(1), "2025-08-18", "2025-08-24").Return([]model.Accomplishment{
		{StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Accomplishments: "<p>Wrote&nbsp;compiler</p>"},
	}, nil)
	accomplishments.EXPECT().ListByUserInWindow(gomock.Any(), int64(2), "2025-08-18", "2025-08-24").Return(nil, nil)

	var corpus string
	svc := NewSummaryService(users, accomplishments, aiSettings(), ai.NewRateLimiter(100)).(*summaryService)
	svc.newProvider = func(ai.Config) (ai.Provider, error) {
		return providerFunc(func(content string) (string, error) {
			corpus = content
			return `{"subjects":[{"badge":1,"name":"Ada L","summary_md":"- compiler"}]}`, nil
		}), nil
	}

	_, err := svc.Summarize(context.Background(), SummaryRequest{From: "2025-08-18", To: "2025-08-24"})
	require.NoError(t, err)

	require.Contains(t, corpus, "User: Ada L (#1)")
	require.Contains(t, corpus, "Window: 2025-08-18 → 2025-08-24")
	require.Contains(t, corpus, "- (2025-08-18→2025-08-24) Wrote compiler")
	require.Contains(t, corpus, "User: Brian K (#2)")
	require.Contains(t, corpus, "- (none)")
}

// providerFunc adapts a closure into a free-form-only Provider.
type providerFunc func(content string) (string, error)

func (f providerFunc) Test(ctx context.Context) (string, error) { return "", nil }
func (f providerFunc) Name() string                             { return "func" }

func (f providerFunc) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	return f(content)
}

func (f providerFunc) CompleteStructured(ctx context.Context, systemPrompt, content string, schema ai.StructuredSchema) (string, error) {
	return "", ai.ErrStructuredUnsupported
}

func TestBuildCorpus_TruncatesLongEntries(t *testing.T) {
	req := SummaryRequest{
		From: "2025-08-18", To: "2025-08-24",
		Users: []SummaryUser{
			{Badge: 1, Name: "A", Entries: []SummaryEntry{
				{StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Text: strings.Repeat("x", 5000)},
			}},
		},
	}

	corpus := buildCorpus(req)
	require.Contains(t, corpus, strings.Repeat("x", 2000))
	require.NotContains(t, corpus, strings.Repeat("x", 2001))
}

func TestBuildCorpus_TruncationKeepsValidUTF8(t *testing.T) {
	req := SummaryRequest{
		From: "2025-08-18", To: "2025-08-24",
		Users: []SummaryUser{
			{Badge: 1, Name: "A", Entries: []SummaryEntry{
				// 2-byte runes, so the byte cap lands mid-rune.
				{StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Text: strings.Repeat("é", 1500)},
			}},
		},
	}

	require.True(t, utf8.ValidString(buildCorpus(req)))
}

func TestBuildCorpus_WindowPerUserBlock(t *testing.T) {
	req := SummaryRequest{
		From: "2025-08-18", To: "2025-08-24",
		Users: []SummaryUser{
			{Badge: 96880, Name: "Trung", Entries: []SummaryEntry{
				{StartWeekDate: "2025-08-18", EndWeekDate: "2025-08-24", Text: "Shipped billing"},
			}},
			{Badge: 2, Name: "Alex"},
		},
	}

	blocks := strings.Split(buildCorpus(req), "\n\n")
	require.Len(t, blocks, 2)
	for _, block := range blocks {
		require.Contains(t, block, "Window: 2025-08-18 → 2025-08-24")
	}
}

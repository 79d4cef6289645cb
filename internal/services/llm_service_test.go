package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/justsurfingit/jobboard/internal/catalog"
	"github.com/justsurfingit/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type cannedModel struct {
	reply  string
	err    error
	prompt string
}

func (m *cannedModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompt += text.Text
			}
		}
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *cannedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestExtractJobDraft(t *testing.T) {
	model := &cannedModel{reply: "```json\n" + `{
		"title": "Data Analyst",
		"company": "Numbers Co",
		"location": "Remote",
		"description": "Crunch numbers.",
		"requirements": ["SQL", "Python"],
		"salary": null,
		"category": "Data Science",
		"type": "contract"
	}` + "\n```"}
	svc := &services.LLMService{Client: model, Categories: catalog.Categories}

	draft, err := svc.ExtractJobDraft(context.Background(), "<html>Data Analyst at Numbers Co</html>")
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", draft.Title)
	assert.Equal(t, []string{"SQL", "Python"}, draft.Requirements)
	assert.Nil(t, draft.Salary)
	assert.Equal(t, "contract", draft.Type)
	assert.Contains(t, model.prompt, "Data Analyst at Numbers Co")
	assert.Contains(t, model.prompt, "Engineering")
}

func TestExtractJobDraftErrors(t *testing.T) {
	ctx := context.Background()

	_, err := (&services.LLMService{}).ExtractJobDraft(ctx, "x")
	assert.ErrorIs(t, err, services.ErrUnavailable)

	_, err = services.NewLLMService(ctx, "", "gemini-2.5-flash", nil)
	assert.ErrorIs(t, err, services.ErrUnavailable)

	svc := &services.LLMService{Client: &cannedModel{reply: "not json"}}
	_, err = svc.ExtractJobDraft(ctx, "x")
	assert.ErrorContains(t, err, "parse job draft")

	upstream := errors.New("quota exceeded")
	svc = &services.LLMService{Client: &cannedModel{err: upstream}}
	_, err = svc.ExtractJobDraft(ctx, "x")
	assert.ErrorIs(t, err, upstream)
}

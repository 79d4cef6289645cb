package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const maxPostingChars = 20000

const jobDraftPrompt = `
You are an expert Job Posting Assistant. Your task is to turn the provided raw text of a job advert into a structured draft posting.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "company": "Name of the company",
    "location": "Job location or 'Remote'",
    "description": "A clean summary of the role without HTML tags.",
    "requirements": ["One", "requirement", "per", "entry"],
    "salary": "The salary string if explicitly mentioned, otherwise null",
    "category": "One of: %s",
    "type": "One of: full-time, part-time, contract, remote"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

type LLMService struct {
	Client     llms.Model
	Categories []string
}

func NewLLMService(ctx context.Context, apiKey, model string, categories []string) (*LLMService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key: %w", ErrUnavailable)
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{Client: llm, Categories: categories}, nil
}

// ExtractJobDraft asks the model for a draft posting. The draft is not
// validated; the employer reviews it before submitting it as a job.
func (s *LLMService) ExtractJobDraft(ctx context.Context, rawText string) (*dtos.JobCreationRequest, error) {
	if s == nil || s.Client == nil {
		return nil, fmt.Errorf("job extraction: %w", ErrUnavailable)
	}
	if len(rawText) > maxPostingChars {
		rawText = rawText[:maxPostingChars]
	}

	prompt := fmt.Sprintf(jobDraftPrompt, strings.Join(s.Categories, ", "), rawText)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate job draft: %w", err)
	}

	var draft dtos.JobCreationRequest
	if err := json.Unmarshal([]byte(stripCodeFence(resp)), &draft); err != nil {
		return nil, fmt.Errorf("parse job draft: %w", err)
	}
	return &draft, nil
}

// stripCodeFence removes a ```json ... ``` wrapper the model sometimes adds
// despite being told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

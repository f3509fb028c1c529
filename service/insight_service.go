package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"compound-interest/domain"
	"compound-interest/report"
)

const (
	defaultInsightModel = "gpt-4o-mini"
	openAIChatURL       = "https://api.openai.com/v1/chat/completions"
)

// InsightService explains a projection in plain words. Without an API key,
// or when the model call fails, it falls back to a fixed template.
type InsightService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	money      *report.CurrencyFormatter
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewInsightService(apiKey, model string, money *report.CurrencyFormatter) *InsightService {
	if model == "" {
		model = defaultInsightModel
	}
	if money == nil {
		money = report.DefaultCurrencyFormatter()
	}
	return &InsightService{
		apiKey:  apiKey,
		apiURL:  openAIChatURL,
		model:   model,
		enabled: apiKey != "",
		money:   money,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Explain describes how the balance grew over the projection.
func (s *InsightService) Explain(
	ctx context.Context,
	input domain.ProjectionInput,
	summary domain.Summary,
) string {
	if !s.enabled {
		return s.fallbackExplanation(input, summary)
	}

	headline := report.NewHeadline(input.Principal, summary)
	prompt := fmt.Sprintf(`Explain this savings projection to a non-expert in 3-4 sentences.

PROJECTION:
- Starting principal: %s
- Annual interest rate: %.2f%%, compounded monthly
- Term: %d years
- Monthly contribution: %s
- Total invested: %s
- Interest earned: %s (%s of the amount invested)
- Final balance: %s (%s the principal)

INSTRUCTIONS:
1. Explain how monthly compounding and regular contributions work together.
2. Mention the exact amounts above.
3. Be encouraging but realistic; do not promise returns.`,
		s.money.Format(input.Principal),
		input.AnnualRate,
		input.Years,
		s.money.Format(input.MonthlyContribution),
		s.money.Format(summary.TotalInvested),
		s.money.Format(summary.TotalInterest), report.Percent(headline.InterestPercentage, 1),
		s.money.Format(summary.FinalBalance), headline.Multiplier())

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		log.Printf("Error calling AI service for projection insight: %v", err)
		return s.fallbackExplanation(input, summary)
	}

	return explanation
}

func (s *InsightService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a personal finance educator. You explain compound interest clearly and precisely, using the figures you are given and never inventing others.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

func (s *InsightService) fallbackExplanation(input domain.ProjectionInput, summary domain.Summary) string {
	headline := report.NewHeadline(input.Principal, summary)

	contributions := "without further contributions"
	if input.MonthlyContribution > 0 {
		contributions = fmt.Sprintf("adding %s every month", s.money.Format(input.MonthlyContribution))
	}

	return fmt.Sprintf("Starting from %s and %s, a %.2f%% annual rate compounded monthly grows your balance to %s after %d years. "+
		"You invest %s in total and earn %s in interest, %s on top of what you put in, for a balance %s your principal.",
		s.money.Format(input.Principal), contributions, input.AnnualRate,
		s.money.Format(summary.FinalBalance), input.Years,
		s.money.Format(summary.TotalInvested), s.money.Format(summary.TotalInterest),
		report.Percent(headline.InterestPercentage, 1), headline.Multiplier())
}

package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Result captures the model's judgement about a headline.
type Result struct {
	Relevant bool
	Summary  string
}

// Request contains the fields embedded into the prompt.
type Request struct {
	Headline    string
	Link        string
	Date        time.Time
	ArticleText string
}

// Analyzer abstracts the relevance classification call.
type Analyzer interface {
	Evaluate(ctx context.Context, req Request) (Result, error)
	Ready() bool
}

// FallbackSummary is used when the model answers YES without the
// "YES | <summary>" separator.
const FallbackSummary = "Check link for details."

var errDisabled = errors.New("classifier disabled: missing GEMINI_API_KEY")

// Client implements Analyzer against the Gemini OpenAI-compatible
// chat completion endpoint.
type Client struct {
	client    *openai.Client
	model     string
	logger    *log.Logger
	activated bool
}

// NewClient builds a new Analyzer. If apiKey is empty the client is
// disabled and every evaluation degrades to "not relevant".
func NewClient(apiKey, model, baseURL string, logger *log.Logger) *Client {
	var cli *openai.Client
	activated := apiKey != ""
	if activated {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		cli = openai.NewClientWithConfig(cfg)
	}
	return &Client{
		client:    cli,
		model:     model,
		logger:    logger,
		activated: activated,
	}
}

// Ready indicates whether the classifier is usable.
func (c *Client) Ready() bool {
	return c.activated && c.client != nil
}

// Evaluate asks the model whether the headline indicates a water cut for
// the target ward. Callers treat any error as "not relevant".
func (c *Client) Evaluate(ctx context.Context, req Request) (Result, error) {
	if !c.Ready() {
		return Result{}, errDisabled
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(req)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return Result{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, errors.New("no choices returned by model")
	}

	return ParseReply(resp.Choices[0].Message.Content), nil
}

// BuildPrompt renders the fixed instruction template. The rule list
// names the sub-areas that count as F-North and the phrasings that must
// be rejected to avoid city-wide false positives.
func BuildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current Date: %s\n", req.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Headline: %q\n", req.Headline)
	fmt.Fprintf(&b, "Link: %s\n", req.Link)
	if req.ArticleText != "" {
		fmt.Fprintf(&b, "Article Text: %s\n", req.ArticleText)
	}
	b.WriteString(`
Task: Determine if this news indicates a Water Cut specifically for **F-North Ward (Sion/Matunga)**.

Rules:
1. YES if it explicitly mentions 'F-North', 'Sion', 'Matunga', 'Wadala', or 'CGS Colony'.
2. YES if it mentions 'F-Ward' generally.
3. NO if it mentions "Across Mumbai" or "City-wide" WITHOUT naming F-North explicitly.
4. NO if it specifies ONLY 'F-South' or other specific wards excluding F-North.
5. MARK RELEVANT even if the date is in the future.

Output format: "YES | [Summary]" or "NO".
`)
	return b.String()
}

// ParseReply decodes the raw model reply. The contract is a "YES | <summary>"
// or "NO" prefix; markdown emphasis markers are stripped first. Anything
// that does not clearly start with YES is not relevant.
func ParseReply(raw string) Result {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "**", ""))
	if !strings.HasPrefix(cleaned, "YES") {
		return Result{}
	}
	res := Result{Relevant: true, Summary: FallbackSummary}
	if _, after, found := strings.Cut(cleaned, "|"); found {
		if summary := strings.TrimSpace(after); summary != "" {
			res.Summary = summary
		}
	}
	return res
}

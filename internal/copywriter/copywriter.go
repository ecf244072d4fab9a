package copywriter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrEmptyPrompt = errors.New("prompt is empty")

// evaluated top to bottom, first match wins
var defaultRules = []rule{
	{keywords: []string{"product", "description"}, kind: KindProduct},
	{keywords: []string{"blog", "article"}, kind: KindBlog},
	{keywords: []string{"ad", "marketing"}, kind: KindMarketing},
	{keywords: []string{"social", "post"}, kind: KindSocial},
	{keywords: []string{"email"}, kind: KindEmail},
}

func New(delay time.Duration) *Copywriter {
	return &Copywriter{
		delay: delay,
		rules: defaultRules,
	}
}

// waits the configured delay, then fills the template selected for the prompt.
// returns ctx.Err() if the caller goes away first.
func (c *Copywriter) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.Prompt == "" {
		return nil, ErrEmptyPrompt
	}

	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("generation abandoned: %w", err)
	}

	kind := c.Classify(req.Prompt)

	return &GenerateResponse{
		Content:  Render(kind, req.Prompt),
		Template: kind,
	}, nil
}

// selects the template for a prompt by case-insensitive keyword containment
func (c *Copywriter) Classify(prompt string) Kind {
	lower := strings.ToLower(prompt)

	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.kind
			}
		}
	}

	return KindDefault
}

func (c *Copywriter) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// returns the configured simulated latency
func (c *Copywriter) Delay() time.Duration {
	return c.delay
}

// counts whitespace-delimited tokens
func CountWords(content string) int {
	return len(strings.Fields(content))
}

package strategy

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model backing the advisor.
const DefaultModel = "gemini-2.0-flash"

// Advisor is a Gemini-backed chat grounded on the retrieved strategy rules
// and the current portfolio status. It answers free-form questions the
// keyword retriever cannot.
type Advisor struct {
	ModelName string
	chat      *genai.Chat
}

// NewAdvisor creates an advisor on the default model.
func NewAdvisor() *Advisor {
	return &Advisor{ModelName: DefaultModel}
}

// Start creates the chat session, grounding the model with the strategy
// rules and the portfolio status line.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, rules Rules, status string) error {
	instruction := fmt.Sprintf(
		"You are a cautious financial analyst for a simulated trading demo.\n"+
			"The user's strategy rules say: %s\n"+
			"The derived price/earnings ceiling is %s.\n"+
			"The user's portfolio is: %s\n"+
			"Answer questions about the strategy and portfolio. Never present this simulation as real investment advice.",
		rules.Context, rules.Limit, status)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the model's text answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "advise> "

// Run starts the interactive REPL session for the advisor.
func (a *Advisor) Run(ctx context.Context, w io.Writer, r io.Reader, prompts ...string) error {
	reader := bufio.NewReader(r)
	fmt.Fprintln(w, "Welcome to the strategy advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, strings.TrimSpace(input))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}

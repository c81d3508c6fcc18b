package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert is a chat with a model specialized in one domain.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        *genai.Chat
}

// Start creates the chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("cannot start %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends 'parts' to the expert and returns its answer. Function calls
// requested by the expert are served from its Library until it answers.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		return e.Ask(ctx, &genai.Part{FunctionResponse: e.Library(ctx, part0.FunctionCall)})
	}
	return resp.Candidates[0].Content, nil
}

// Declaration returns the function declaration to ask this expert a question.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call asks the expert the question in 'args'.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, ok := args["question"].(string)
	if !ok {
		return errorResponse(id, e.Name, fmt.Errorf("invalid question type got %T, expected string", args["question"]))
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return errorResponse(id, e.Name, fmt.Errorf("something went wrong while calling the expert: %w", err))
	}

	r := response.Parts[0].Text
	log.Printf("Expert %q: \n        %q\n        %q", e.Name, question, r)
	return &genai.FunctionResponse{ID: id, Name: e.Name, Response: map[string]any{"output": r}}
}

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are in charge of the conversation with the owner of a 401k account.
			They want to know whether their retirement savings did well, compared to
			simple alternatives like index funds.

			The experts available as Tools keep the context of your previous questions.
			Devise a plan of questions to ask them, then answer the user with figures.
			Never give a definitive investment advice, present the trade-offs instead.
			`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search, for news about the
// funds and benchmarks.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `An expert trader aware of financial products, index funds and ETFs.
		Ask the Trader whenever you need recent news or facts about a fund (fees, composition, history).`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading. You search Google to ground your assertions
			about funds, ETFs and markets, and relate the latest news to the user's request.
			`}}},
		},
	}
}

// NewAnalyst returns an expert that reads the portfolio reports.
func NewAnalyst(reports Reports) *Expert {
	lib := ReportFunctions(reports)
	return &Expert{
		Name: "Analyst",
		Description: `The Analyst reads the user's 401k contributions and computes the reports:
		summary figures, comparison to benchmark instruments and the blended target allocation.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the analyst of the user's 401k account. Use the Tools to get the
			reports, they are markdown documents. The excess return of a benchmark is
			its terminal value minus the actual portfolio value: positive means the
			benchmark would have done better.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

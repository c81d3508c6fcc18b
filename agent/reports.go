package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Reports computes the portfolio reports as markdown.
type Reports interface {
	Summary(ctx context.Context) (string, error)
	// Comparison compares the portfolio to 'tickers', or to the configured
	// benchmarks when empty.
	Comparison(ctx context.Context, tickers []string) (string, error)
	// Blend simulates the target allocation next to 'benchmark', or the
	// configured one when empty.
	Blend(ctx context.Context, benchmark string) (string, error)
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

// Call runs the function, its markdown output or error is the response.
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return errorResponse(id, f.Decl.Name, err)
	}
	return &genai.FunctionResponse{ID: id, Name: f.Decl.Name, Response: map[string]any{"output": out}}
}

var markdownResponse = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown document.",
}

// ReportFunctions returns the functions giving access to 'reports'.
func ReportFunctions(reports Reports) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summary",
				Description: "Summary returns the headline figures of the 401k: current value, contributions, dividends, returns, and contribution left for this year.",
				Response:    markdownResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return reports.Summary(ctx)
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name: "Comparison",
				Description: `Comparison simulates every contribution invested into each benchmark instrument instead,
				and compares the terminal value to the actual portfolio value.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"tickers": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "US tickers of the benchmark instruments, like SPY or QQQ. The configured list is used when empty.",
						},
					},
				},
				Response: markdownResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				tickers, err := stringList(args, "tickers")
				if err != nil {
					return "", err
				}
				return reports.Comparison(ctx, tickers)
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Blend",
				Description: "Blend simulates the user's target allocation, with and without the dividends received, next to a benchmark instrument.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"benchmark": {
							Type:        genai.TypeString,
							Description: "US ticker of the benchmark. The configured one is used when empty.",
						},
					},
				},
				Response: markdownResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				benchmark, _ := args["benchmark"].(string)
				return reports.Blend(ctx, benchmark)
			},
		},
	}
}

// stringList returns the list of strings argument 'name', nil if absent.
func stringList(args map[string]any, name string) ([]string, error) {
	arg, ok := args[name]
	if !ok || arg == nil {
		return nil, nil
	}
	list, ok := arg.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %q is not a list but %T", name, arg)
	}
	res := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("argument %q contains %T, expected string", name, item)
		}
		res = append(res, s)
	}
	return res, nil
}

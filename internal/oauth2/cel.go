package oauth2

import (
	"encoding/json"
	"fmt"

	"github.com/google/cel-go/cel"
)

func compileCEL(expression string) (cel.Program, error) {
	env, err := cel.NewEnv(
		cel.Variable("tokens", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile CEL expression: %w", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program: %w", err)
	}

	return prg, nil
}

// CheckTokenCEL checks the token response against the configured CEL expression.
// Without an expression, every token response passes.
func (c *Client) CheckTokenCEL(tokens Tokens) error {
	if c.celPrg == nil {
		return nil
	}

	// CEL has no notion of json.Number, re-decode into plain JSON values.
	raw, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}

	var claims map[string]any
	if err = json.Unmarshal(raw, &claims); err != nil {
		return fmt.Errorf("failed to decode tokens: %w", err)
	}

	result, _, err := c.celPrg.Eval(map[string]any{
		"tokens": claims,
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate CEL expression: %w", err)
	}

	resultValue, ok := result.Value().(bool)
	if !ok {
		return ErrCELNoBooleanResult
	}

	if !resultValue {
		return ErrCELValidationFailed
	}

	return nil
}

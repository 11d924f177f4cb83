package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/pkg/billplz"
)

type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamBoolean ParamType = "boolean"
	ParamArray   ParamType = "array"
)

type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Tool is one Billplz operation exposed to the CLI, the MCP server and the
// HTTP gateway.
type Tool struct {
	Name        string
	Description string
	Params      []Param

	newInput func() any
	run      func(ctx context.Context, c *billplz.Client, input any) (*Result, error)
}

// NewInput returns a pointer to a zero input struct for the tool.
func (t *Tool) NewInput() any {
	return t.newInput()
}

func (t *Tool) Info() dto.ToolInfo {
	params := make([]dto.ParamInfo, len(t.Params))
	for i, p := range t.Params {
		params[i] = dto.ParamInfo{
			Name:        p.Name,
			Type:        string(p.Type),
			Description: p.Description,
			Required:    p.Required,
		}
	}
	return dto.ToolInfo{Name: t.Name, Description: t.Description, Params: params}
}

func newTool[T any](name, description string, params []Param, run func(ctx context.Context, c *billplz.Client, in *T) (*Result, error)) *Tool {
	return &Tool{
		Name:        name,
		Description: description,
		Params:      params,
		newInput:    func() any { return new(T) },
		run: func(ctx context.Context, c *billplz.Client, input any) (*Result, error) {
			in, ok := input.(*T)
			if !ok {
				return nil, fmt.Errorf("%w: %s takes %T, got %T", ErrInputType, name, new(T), input)
			}
			return run(ctx, c, in)
		},
	}
}

// Result is either a typed value or the raw body of a passthrough operation.
type Result struct {
	Value      any
	Raw        string
	ResourceID string

	raw bool
}

func typedResult(v any, resourceID string) *Result {
	return &Result{Value: v, ResourceID: resourceID}
}

func rawResult(body string) *Result {
	var probe struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal([]byte(body), &probe)
	return &Result{Raw: body, ResourceID: probe.ID, raw: true}
}

func (r *Result) IsRaw() bool {
	return r.raw
}

// JSON renders the result for machine consumers. A raw body that is valid
// JSON is embedded as-is; anything else becomes a JSON string.
func (r *Result) JSON(pretty bool) ([]byte, error) {
	if !r.raw {
		if pretty {
			return json.MarshalIndent(r.Value, "", "  ")
		}
		return json.Marshal(r.Value)
	}

	if !json.Valid([]byte(r.Raw)) {
		if pretty {
			return json.MarshalIndent(r.Raw, "", "  ")
		}
		return json.Marshal(r.Raw)
	}

	var buf bytes.Buffer
	var err error
	if pretty {
		err = json.Indent(&buf, []byte(r.Raw), "", "  ")
	} else {
		err = json.Compact(&buf, []byte(r.Raw))
	}
	if err != nil {
		return nil, fmt.Errorf("format body: %w", err)
	}
	return buf.Bytes(), nil
}

// Text renders the result for humans: typed values as indented JSON and
// passthrough bodies verbatim.
func (r *Result) Text() (string, error) {
	if r.raw {
		return r.Raw, nil
	}
	data, err := json.MarshalIndent(r.Value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(data), nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/model"
	"github.com/anyulbade/billplz/pkg/billplz"
)

var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrInputType   = errors.New("wrong input type")
)

const journalTimeout = 2 * time.Second

// Recorder persists journal entries. Failures are logged, never returned to
// the caller of the tool.
type Recorder interface {
	Record(ctx context.Context, entry *model.JournalEntry) error
}

type ValidationError struct {
	Fields []dto.ValidationError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.Field == "" {
			parts[i] = f.Message
			continue
		}
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

type ToolService struct {
	client   *billplz.Client
	journal  Recorder
	validate *validator.Validate
	tools    []*Tool
	byName   map[string]*Tool
}

// NewToolService wires the tool catalog to client. journal may be nil.
func NewToolService(client *billplz.Client, journal Recorder) *ToolService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	tools := catalog()
	byName := make(map[string]*Tool, len(tools))
	for _, t := range tools {
		byName[t.Name] = t
	}

	return &ToolService{
		client:   client,
		journal:  journal,
		validate: v,
		tools:    tools,
		byName:   byName,
	}
}

func (s *ToolService) Tools() []*Tool {
	out := make([]*Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

func (s *ToolService) Tool(name string) (*Tool, error) {
	t, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return t, nil
}

// Decode unmarshals a JSON document into the named tool's input struct. An
// empty document decodes as {}.
func (s *ToolService) Decode(name string, data []byte) (any, error) {
	t, err := s.Tool(name)
	if err != nil {
		return nil, err
	}

	input := t.NewInput()
	if len(strings.TrimSpace(string(data))) == 0 {
		return input, nil
	}
	if err := json.Unmarshal(data, input); err != nil {
		return nil, &ValidationError{Fields: []dto.ValidationError{{Message: "malformed input: " + err.Error()}}}
	}
	return input, nil
}

// Invoke validates input and runs the named tool against Billplz. Every call
// for a known tool is counted and, when a journal is configured, recorded.
func (s *ToolService) Invoke(ctx context.Context, name string, input any) (*Result, error) {
	t, err := s.Tool(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := s.invoke(ctx, t, input)
	elapsed := time.Since(start)

	entry := newEntry(t.Name, input, res, err, elapsed)
	toolCalls.WithLabelValues(t.Name, string(entry.Outcome)).Inc()
	toolDuration.WithLabelValues(t.Name).Observe(elapsed.Seconds())
	s.record(ctx, entry)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ToolService) invoke(ctx context.Context, t *Tool, input any) (*Result, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	return t.run(ctx, s.client, input)
}

func (s *ToolService) check(input any) error {
	if input == nil {
		return &ValidationError{Fields: []dto.ValidationError{{Message: "missing input"}}}
	}

	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: []dto.ValidationError{{Message: err.Error()}}}
	}

	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, dto.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath drops the struct name: "CreateCollectionInput.split_payments[0].email"
// becomes "split_payments[0].email".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "numeric":
		return "must be numeric"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "datetime":
		return "must be a date in the form " + fe.Param()
	case "excluded_with":
		return "cannot be combined with " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func (s *ToolService) record(ctx context.Context, entry *model.JournalEntry) {
	if s.journal == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()

	if err := s.journal.Record(ctx, entry); err != nil {
		journalFailures.Inc()
		log.Warn().Err(err).Str("tool", entry.Tool).Msg("failed to write journal entry")
	}
}

func newEntry(tool string, input any, res *Result, err error, elapsed time.Duration) *model.JournalEntry {
	entry := &model.JournalEntry{
		Tool:       tool,
		Outcome:    outcomeOf(err),
		DurationMS: elapsed.Milliseconds(),
	}

	if res != nil {
		entry.ResourceID = res.ResourceID
	} else if r, ok := input.(interface{ ResourceID() string }); ok {
		entry.ResourceID = r.ResourceID()
	}

	if err != nil {
		entry.ErrorMessage = err.Error()
		var bErr *billplz.Error
		if errors.As(err, &bErr) {
			entry.StatusCode = bErr.StatusCode
			entry.ErrorType = bErr.Type
		}
	}
	return entry
}

func outcomeOf(err error) model.Outcome {
	var vErr *ValidationError
	switch {
	case err == nil:
		return model.OutcomeOK
	case errors.As(err, &vErr), errors.Is(err, ErrInputType):
		return model.OutcomeInvalid
	case billplz.IsKind(err, billplz.KindAPI):
		return model.OutcomeAPIError
	case billplz.IsKind(err, billplz.KindTransport):
		return model.OutcomeTransportError
	case billplz.IsKind(err, billplz.KindParse):
		return model.OutcomeParseError
	default:
		return model.OutcomeError
	}
}

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/rs/zerolog/log"

	"github.com/whisperengine-ai/whisperengine-v2-sub028/feedback/fileutils"
)

// Responder is the subset of the OpenAI Responses service used here.
type Responder interface {
	New(ctx context.Context, params responses.ResponseNewParams, opts ...option.RequestOption) (*responses.Response, error)
}

// Wait times between attempts. Variables so tests can shorten them.
var (
	rateLimitWaitTimes   = []time.Duration{65 * time.Second, 100 * time.Second, 135 * time.Second}
	serverErrorWaitTimes = []time.Duration{5 * time.Second, 30 * time.Second, 60 * time.Second}
)

const maxRetries = 3

// CallWithRetry sends params, retrying rate-limit and server errors with fixed back-off.
func CallWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	if client == nil {
		return nil, errors.New("CallWithRetry: client is nil")
	}
	return callWithRetry(ctx, &client.Responses, params)
}

func callWithRetry(ctx context.Context, r Responder, params responses.ResponseNewParams) (*responses.Response, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := r.New(ctx, params)
		if err == nil {
			return resp, nil
		}

		var wait time.Duration
		switch {
		case isRateLimitError(err):
			wait = rateLimitWaitTimes[attempt]
		case isServerError(err):
			wait = serverErrorWaitTimes[attempt]
		default:
			return nil, err
		}
		if attempt == maxRetries-1 {
			return nil, err
		}

		log.Warn().Err(err).Int("attempt", attempt+1).Dur("wait", wait).Msg("openai call failed, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("failed after %d attempts due to OpenAI API issues", maxRetries)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "server_error")
}

// DecodeResponse decodes the response's output text into v, tolerating prose or code fences
// around the JSON.
func DecodeResponse(resp *responses.Response, v any) error {
	if resp == nil {
		return errors.New("DecodeResponse: nil response")
	}
	text := resp.OutputText()
	if err := fileutils.DecodeModelJSON(text, v); err != nil {
		log.Debug().Err(err).Str("output", fileutils.Truncate(fileutils.SanitizeNewlines(text), 200)).Msg("undecodable model output")
		return fmt.Errorf("DecodeResponse: %w", err)
	}
	return nil
}

// GenerateSchema reflects T into a strict JSON schema suitable for structured outputs.
// Every object is closed and lists all of its properties as required.
func GenerateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	b, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		panic(fmt.Errorf("GenerateSchema: %w", err))
	}
	var schema map[string]any
	if err := json.Unmarshal(b, &schema); err != nil {
		panic(fmt.Errorf("GenerateSchema: %w", err))
	}
	delete(schema, "$schema")
	delete(schema, "$id")
	closeObjects(schema)
	return schema
}

// SchemaFormat wraps a schema from GenerateSchema as a strict json_schema text format.
func SchemaFormat(name, description string, schema map[string]any) responses.ResponseFormatTextConfigUnionParam {
	return responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        name,
			Schema:      schema,
			Strict:      openai.Bool(true),
			Description: openai.String(description),
			Type:        "json_schema",
		},
	}
}

func closeObjects(node map[string]any) {
	props, _ := node["properties"].(map[string]any)
	if t, _ := node["type"].(string); t == "object" {
		node["additionalProperties"] = false
		if len(props) > 0 {
			required := make([]string, 0, len(props))
			for name := range props {
				required = append(required, name)
			}
			sort.Strings(required)
			node["required"] = required
		}
	}
	for _, p := range props {
		if m, ok := p.(map[string]any); ok {
			closeObjects(m)
		}
	}
	for _, key := range []string{"items", "additionalProperties"} {
		if m, ok := node[key].(map[string]any); ok {
			closeObjects(m)
		}
	}
}

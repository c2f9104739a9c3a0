package fileutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNoJSON reports that no JSON candidate could be located in model output.
var ErrNoJSON = errors.New("no JSON found in model output")

var fencedBlockRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// ModelJSON is the outcome of ExtractModelJSON. Found is false when nothing parseable was recovered;
// otherwise Value is a map[string]any or a []any. Numbers are json.Number so 64-bit IDs survive intact.
type ModelJSON struct {
	Value any
	Found bool
}

// Object returns the value as a JSON object, if it is one.
func (r ModelJSON) Object() (map[string]any, bool) {
	m, ok := r.Value.(map[string]any)
	return m, r.Found && ok
}

// Array returns the value as a JSON array, if it is one.
func (r ModelJSON) Array() ([]any, bool) {
	a, ok := r.Value.([]any)
	return a, r.Found && ok
}

// ExtractModelJSON recovers a JSON object or array from free-form model output.
//
// The first fenced code block wins if present. Otherwise the span from the first '{' or '['
// (whichever comes first) to the last matching closer is tried, and failing that the whole text.
// Only one candidate is parsed; there is no backtracking. Stray brackets outside the real value
// can therefore defeat the search. Malformed output is not an error: Found is simply false.
func ExtractModelJSON(outputText string) ModelJSON {
	candidate, ok := modelJSONCandidate(outputText)
	if !ok {
		return ModelJSON{}
	}

	v, err := decodeValue(candidate)
	if err != nil {
		log.Debug().Err(err).
			Int("len", len(candidate)).
			Str("preview", Truncate(SanitizeNewlines(candidate), 120)).
			Msg("model output is not valid JSON")
		return ModelJSON{}
	}
	switch v.(type) {
	case map[string]any, []any:
		return ModelJSON{Value: v, Found: true}
	default:
		log.Debug().Int("len", len(candidate)).Msg("model output is a JSON scalar, not an object or array")
		return ModelJSON{}
	}
}

// DecodeModelJSON unmarshals JSON from a model response into v, locating the JSON the same way
// ExtractModelJSON does. It returns io.ErrUnexpectedEOF for empty output.
func DecodeModelJSON(outputText string, v any) error {
	candidate, ok := modelJSONCandidate(outputText)
	if !ok {
		return io.ErrUnexpectedEOF
	}
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		if !strings.ContainsAny(candidate, "{[") {
			return fmt.Errorf("%w (len=%d)", ErrNoJSON, len(candidate))
		}
		return fmt.Errorf("failed to unmarshal extracted JSON (len=%d): %w", len(candidate), err)
	}
	return nil
}

// decodeValue parses exactly one JSON value, keeping numbers as json.Number.
func decodeValue(candidate string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func modelJSONCandidate(outputText string) (string, bool) {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return "", false
	}

	if m := fencedBlockRe.FindStringSubmatch(s); m != nil {
		return m[1], true
	}

	startObj := strings.IndexByte(s, '{')
	startArr := strings.IndexByte(s, '[')
	start := -1
	closer := byte('}')
	switch {
	case startObj >= 0 && (startArr == -1 || startObj < startArr):
		start = startObj
	case startArr >= 0:
		start = startArr
		closer = ']'
	}
	if start == -1 {
		return s, true
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return s, true
	}
	return s[start : end+1], true
}

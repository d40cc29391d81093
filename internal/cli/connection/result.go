package connection

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Result is the decoded body of a successful call: Structured or Raw.
type Result interface {
	isResult()
}

// Structured is a body that parsed as JSON. Numbers are json.Number.
type Structured struct {
	Value any
	data  []byte
}

// Raw is a body that did not parse as JSON, kept as text.
type Raw string

func (Structured) isResult() {}
func (Raw) isResult()        {}

// Decode unmarshals the JSON body into target.
func (s Structured) Decode(target any) error {
	data := s.data
	if data == nil {
		var err error
		if data, err = json.Marshal(s.Value); err != nil {
			return err
		}
	}
	return json.Unmarshal(data, target)
}

// MarshalJSON emits the original JSON document.
func (s Structured) MarshalJSON() ([]byte, error) {
	if s.data != nil {
		return s.data, nil
	}
	return json.Marshal(s.Value)
}

// decodeResult parses body as a single JSON document, falling back to Raw.
// An empty body is Raw("").
func decodeResult(body []byte) Result {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Raw(body)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Raw(body)
	}
	return Structured{Value: v, data: bytes.TrimSpace(body)}
}

package connection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Request is one of Get, PostJSON, PostMultipart or Delete.
type Request interface {
	// method is the HTTP method put on the wire.
	method() string
	// verb labels the request in logs and metrics.
	verb() string
	// body returns the encoded payload and its content type.
	body() (io.Reader, string, error)
}

// File is one part of a multipart upload. Name is used both as the form
// field name and as the file name.
type File struct {
	Name string
	Data []byte
}

// Files is an ordered list of multipart parts.
type Files []File

// Get is a GET request without body.
type Get struct{}

// PostJSON is a POST request whose body is Body encoded as JSON.
type PostJSON struct {
	Body any
}

// PostMultipart is a POST request sending Files as multipart/form-data.
type PostMultipart struct {
	Files Files
}

// Delete is a DELETE request without body.
type Delete struct{}

func (Get) method() string           { return http.MethodGet }
func (PostJSON) method() string      { return http.MethodPost }
func (PostMultipart) method() string { return http.MethodPost }
func (Delete) method() string        { return http.MethodDelete }

func (Get) verb() string           { return "GET" }
func (PostJSON) verb() string      { return "POST" }
func (PostMultipart) verb() string { return "MULTIPART" }
func (Delete) verb() string        { return "DELETE" }

func (Get) body() (io.Reader, string, error)    { return nil, "", nil }
func (Delete) body() (io.Reader, string, error) { return nil, "", nil }

func (r PostJSON) body() (io.Reader, string, error) {
	if raw, ok := r.Body.(json.RawMessage); ok {
		return bytes.NewReader(raw), "application/json", nil
	}
	data, err := json.Marshal(r.Body)
	if err != nil {
		return nil, "", fmt.Errorf("marshal body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

func (r PostMultipart) body() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range r.Files {
		part, err := w.CreateFormFile(f.Name, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/studiofolio/site-console/internal/core/ports"
)

// encodeJSONPayload serializes a payload body with the field-level
// instructions applied: omitted fields are stripped entirely, cleared
// fields go out as an explicit empty string.
func encodeJSONPayload(p ports.Payload) ([]byte, error) {
	fields, err := bodyFields(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// encodeMultipartPayload writes the body fields as form values and the
// staged files as file parts. Scalar strings travel as plain values;
// lists and objects travel JSON-encoded.
func encodeMultipartPayload(p ports.Payload) (*bytes.Buffer, string, error) {
	fields, err := bodyFields(p)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, raw := range fields {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			s = string(raw)
		}
		if err := w.WriteField(name, s); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	for _, fp := range p.Files {
		part, err := w.CreateFormFile(fp.Field, fp.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", fp.Field, err)
		}
		if _, err := part.Write(fp.Content); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", fp.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// bodyFields flattens the payload body to named raw fields with omit and
// clear applied. Fields carrying a staged file are stripped too, since the file
// part replaces them.
func bodyFields(p ports.Payload) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(p.Body)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("payload body is not an object: %w", err)
	}

	for _, name := range p.Omit {
		delete(fields, name)
	}
	for _, fp := range p.Files {
		delete(fields, fp.Field)
	}
	for _, name := range p.Clear {
		fields[name] = json.RawMessage(`""`)
	}
	return fields, nil
}

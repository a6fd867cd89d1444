// Package payload builds the flat key/value transport payload submitted to
// the legal-processing endpoint, and encodes it as multipart/form-data.
package payload

import (
	"fmt"
	"io"
	"mime/multipart"
)

// File is a binary part of the payload.
type File struct {
	Filename string
	Content  []byte
}

// Payload is the transport mapping of unique string keys to string or binary
// values. It is constructed fresh per submission attempt, mutated by
// appending computed fields and the report artifact, then encoded and not
// reused afterward. Key order is preserved for deterministic encoding;
// receivers treat ordering as irrelevant.
type Payload struct {
	values map[string]string
	files  map[string]File
	order  []string
}

// New returns an empty payload.
func New() *Payload {
	return &Payload{
		values: make(map[string]string),
		files:  make(map[string]File),
	}
}

// SetValue writes a string part, replacing any previous part under the key.
func (p *Payload) SetValue(key, value string) {
	if p == nil || key == "" {
		return
	}
	p.track(key)
	delete(p.files, key)
	p.values[key] = value
}

// SetFile writes a binary part, replacing any previous part under the key.
func (p *Payload) SetFile(key string, file File) {
	if p == nil || key == "" {
		return
	}
	p.track(key)
	delete(p.values, key)
	p.files[key] = file
}

// Delete removes the key entirely.
func (p *Payload) Delete(key string) {
	if p == nil {
		return
	}
	if !p.Has(key) {
		return
	}
	delete(p.values, key)
	delete(p.files, key)
	for i, existing := range p.order {
		if existing == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Value reads a string part.
func (p *Payload) Value(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value, ok := p.values[key]
	return value, ok
}

// File reads a binary part.
func (p *Payload) File(key string) (File, bool) {
	if p == nil {
		return File{}, false
	}
	file, ok := p.files[key]
	return file, ok
}

// Has reports whether the key is present as either part kind.
func (p *Payload) Has(key string) bool {
	if p == nil {
		return false
	}
	if _, ok := p.values[key]; ok {
		return true
	}
	_, ok := p.files[key]
	return ok
}

// Keys returns the present keys in insertion order.
func (p *Payload) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.order...)
}

// Len reports the number of parts.
func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// Encode writes the payload as multipart/form-data and returns the content
// type carrying the boundary.
func (p *Payload) Encode(w io.Writer) (string, error) {
	if p == nil {
		return "", fmt.Errorf("payload: payload is nil")
	}
	writer := multipart.NewWriter(w)
	for _, key := range p.order {
		if file, ok := p.files[key]; ok {
			part, err := writer.CreateFormFile(key, file.Filename)
			if err != nil {
				return "", fmt.Errorf("payload: create file part %q: %w", key, err)
			}
			if _, err := part.Write(file.Content); err != nil {
				return "", fmt.Errorf("payload: write file part %q: %w", key, err)
			}
			continue
		}
		if err := writer.WriteField(key, p.values[key]); err != nil {
			return "", fmt.Errorf("payload: write field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("payload: close multipart writer: %w", err)
	}
	return writer.FormDataContentType(), nil
}

func (p *Payload) track(key string) {
	if p.Has(key) {
		return
	}
	p.order = append(p.order, key)
}

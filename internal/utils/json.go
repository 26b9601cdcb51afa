package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile reads a config file, wrapping errors with the path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// DecodeJSONStrict unmarshals data into target, rejecting unknown fields
// and trailing content.
func DecodeJSONStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("failed to unmarshal JSON: trailing data after document")
	}
	return nil
}

package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"friendgrid/internal/model"
)

// resolveContact reads the email and additionalFields parameters of item i
// into a typed, validated ContactInput.
func resolveContact(fns ExecuteFunctions, i int) (model.ContactInput, error) {
	email, err := stringParam(fns, ParamEmail, i)
	if err != nil {
		return model.ContactInput{}, err
	}
	if strings.TrimSpace(email) == "" {
		return model.ContactInput{}, ErrEmailRequired
	}

	fields, err := additionalFieldsParam(fns, i)
	if err != nil {
		return model.ContactInput{}, err
	}

	return model.NewContactInput(email, fields), nil
}

func stringParam(fns ExecuteFunctions, name string, i int) (string, error) {
	v, err := fns.NodeParameter(name, i)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidParameter, name, v)
	}
}

// additionalFieldsParam decodes the collection strictly: keys outside the
// declared field set are rejected rather than forwarded upstream.
func additionalFieldsParam(fns ExecuteFunctions, i int) (model.AdditionalFields, error) {
	var fields model.AdditionalFields

	v, err := fns.NodeParameter(ParamAdditionalFields, i)
	if err != nil {
		return fields, fmt.Errorf("resolve %s: %w", ParamAdditionalFields, err)
	}

	switch typed := v.(type) {
	case nil:
		return fields, nil
	case model.AdditionalFields:
		return typed, nil
	case *model.AdditionalFields:
		if typed == nil {
			return fields, nil
		}
		return *typed, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fields, fmt.Errorf("%w: %s: %v", ErrInvalidParameter, ParamAdditionalFields, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fields); err != nil {
		return fields, fmt.Errorf("%w: %s: %v", ErrInvalidParameter, ParamAdditionalFields, err)
	}
	return fields, nil
}

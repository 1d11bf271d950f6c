// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// ErrExtraInput is reported by Parse when input remains after the first
// complete value.
var ErrExtraInput = errors.New("extra input after value")

// Parse parses and returns a single JSON value from r. If r contains data
// after the first value, Parse returns the value along with ErrExtraInput.
func Parse(r io.Reader) (Value, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errors.New("empty input")
	} else if err != nil {
		return nil, err
	}
	v, err := parseNext(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return v, ErrExtraInput
	}
	return v, nil
}

// ParseBytes parses and returns a single JSON value from data.
func ParseBytes(data []byte) (Value, error) { return Parse(bytes.NewReader(data)) }

// ParseHuJSON parses a single value written in the HuJSON ("human JSON")
// extended syntax, permitting comments and trailing commas. The input is
// standardized to plain JSON before parsing, so comments do not survive into
// the resulting tree.
func ParseHuJSON(data []byte) (Value, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	return ParseBytes(std)
}

// parseNext assembles the value introduced by tok, consuming further tokens
// from dec as needed for objects and arrays.
func parseNext(dec *gojson.Decoder, tok gojson.Token) (Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q", t.String())
	case string:
		return String(t), nil
	case gojson.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unknown token %[1]T (%[1]v)", tok)
	}
}

// parseObject consumes members up to and including the closing brace.
// Precondition: the opening brace has already been consumed.
func parseObject(dec *gojson.Decoder) (Value, error) {
	obj := Object{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if d, ok := tok.(gojson.Delim); ok {
			if d == '}' {
				return obj, nil
			}
			return nil, fmt.Errorf("unexpected %q in object", d.String())
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid object key %[1]T (%[1]v)", tok)
		}
		vtok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := parseNext(dec, vtok)
		if err != nil {
			return nil, err
		}
		obj = append(obj, &Member{Key: key, Value: v})
	}
}

// parseArray consumes elements up to and including the closing bracket.
// Precondition: the opening bracket has already been consumed.
func parseArray(dec *gojson.Decoder) (Value, error) {
	arr := Array{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if d, ok := tok.(gojson.Delim); ok && d == ']' {
			return arr, nil
		}
		v, err := parseNext(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

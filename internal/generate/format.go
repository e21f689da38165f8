package generate

import (
	"fmt"
	"strings"
)

type Format int

const (
	Unknown Format = iota
	Pretty
	Plain
	JSON
)

var (
	ErrInvalidFormat = fmt.Errorf("unknown format")
)

func FormatFromString(in string) (Format, error) {
	switch strings.ToLower(in) {
	case "pretty":
		return Pretty, nil
	case "plain", "text":
		return Plain, nil
	case "json":
		return JSON, nil
	}
	return Unknown, ErrInvalidFormat
}

func (f Format) String() string {
	switch f {
	case Pretty:
		return "pretty"
	case Plain:
		return "text"
	case JSON:
		return "json"
	}
	return "unknown"
}

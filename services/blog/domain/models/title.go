package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Title is a value object representing a valid blog title.
// Encapsulates validation rules: not blank, at most 255 characters.
type Title string

const maxTitleLength = 255

var errTitleBlank = errors.New("can't be blank")

// NewTitle constructs a valid Title or returns an error describing the violated
// constraint. The message is phrased to follow the field name.
func NewTitle(s string) (Title, error) {
	if strings.TrimSpace(s) == "" {
		return "", errTitleBlank
	}
	if utf8.RuneCountInString(s) > maxTitleLength {
		return "", fmt.Errorf("is too long (maximum is %d characters)", maxTitleLength)
	}
	return Title(s), nil
}

// String returns the underlying string value.
func (t Title) String() string {
	return string(t)
}

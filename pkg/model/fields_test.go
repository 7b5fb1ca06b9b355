package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple name", input: "John"},
		{name: "name with spaces", input: "John Doe"},
		{name: "alphanumeric", input: "John the 2nd"},
		{name: "single character", input: "a"},
		{name: "empty rejected", input: "", wantErr: ErrInvalidName},
		{name: "leading space rejected", input: " John", wantErr: ErrInvalidName},
		{name: "only spaces rejected", input: "   ", wantErr: ErrInvalidName},
		{name: "symbols rejected", input: "John*", wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "three digits", input: "911"},
		{name: "long number", input: "93121534"},
		{name: "empty rejected", input: "", wantErr: ErrInvalidPhone},
		{name: "too short rejected", input: "91", wantErr: ErrInvalidPhone},
		{name: "letters rejected", input: "phone", wantErr: ErrInvalidPhone},
		{name: "digits with spaces rejected", input: "9312 1534", wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhone(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "plain address", input: "PeterJack_1190@example.com"},
		{name: "short local part", input: "a@bc.de"},
		{name: "hyphenated domain", input: "peter_jack@very-very-very-long-example.com"},
		{name: "plus in local part", input: "test+tag@example.org"},
		{name: "empty rejected", input: "", wantErr: ErrInvalidEmail},
		{name: "missing at rejected", input: "peterjackexample.com", wantErr: ErrInvalidEmail},
		{name: "missing local part rejected", input: "@example.com", wantErr: ErrInvalidEmail},
		{name: "missing domain rejected", input: "peterjack@", wantErr: ErrInvalidEmail},
		{name: "leading underscore rejected", input: "_peterjack@example.com", wantErr: ErrInvalidEmail},
		{name: "domain without period rejected", input: "peterjack@example", wantErr: ErrInvalidEmail},
		{name: "single char top level domain rejected", input: "peterjack@example.c", wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmail(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "any text accepted", input: "Blk 456, Den Road, #01-355"},
		{name: "single char accepted", input: "-"},
		{name: "empty rejected", input: "", wantErr: ErrInvalidAddress},
		{name: "whitespace only rejected", input: " ", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAddress(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "alphanumeric accepted", input: "friends2"},
		{name: "empty rejected", input: "", wantErr: ErrInvalidTag},
		{name: "spaces rejected", input: "owes money", wantErr: ErrInvalidTag},
		{name: "symbols rejected", input: "vip!", wantErr: ErrInvalidTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTag(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

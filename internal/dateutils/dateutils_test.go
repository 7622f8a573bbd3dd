package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "excel serial", input: "45474", expected: "2024-07-01"},
		{name: "excel serial with time", input: "45474.5", expected: "2024-07-01 12:00:00"},
		{name: "iso date", input: "2024-06-15", expected: "2024-06-15"},
		{name: "day first slash", input: "15/06/2024", expected: "2024-06-15"},
		{name: "day first dots", input: " 15.06.2024 ", expected: "2024-06-15"},
		{name: "unknown text kept", input: "fin de mes", expected: "fin de mes"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDateCell(tt.input))
		})
	}
}

func TestFormatTimeCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "noon fraction", input: "0.5", expected: "12:00:00"},
		{name: "quarter past nine", input: "0.385416666666667", expected: "09:15:00"},
		{name: "midnight", input: "0", expected: "00:00:00"},
		{name: "datetime serial", input: "45446.385416666664", expected: "09:15:00"},
		{name: "whole day serial", input: "45446", expected: "00:00:00"},
		{name: "textual", input: "14:30", expected: "14:30:00"},
		{name: "twelve hour", input: "2:30 PM", expected: "14:30:00"},
		{name: "unknown kept", input: "tarde", expected: "tarde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeCell(tt.input))
		})
	}
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "data válida",
			input:    "2024-01-15",
			expected: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "string vazia é rejeitada",
			input:   "",
			wantErr: true,
		},
		{
			name:    "formato brasileiro é rejeitado",
			input:   "15/01/2024",
			wantErr: true,
		},
		{
			name:    "mês inválido",
			input:   "2024-13-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, date)
		})
	}
}

func TestYesterday(t *testing.T) {
	now := time.Date(2024, time.March, 1, 15, 30, 45, 0, time.UTC)

	yesterday := Yesterday(now)

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), yesterday)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	assert.NoError(t, err)
	assert.Len(t, id, 6)

	for _, r := range id {
		assert.Contains(t, idAlphabet, string(r))
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIdeaUpdate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantColumns map[string]any
		wantIgnored []string
		wantErr     bool
	}{
		{
			name:        "empty object",
			body:        `{}`,
			wantColumns: map[string]any{},
		},
		{
			name:        "all null",
			body:        `{"title":null,"description":null,"is_favorite":null}`,
			wantColumns: map[string]any{},
		},
		{
			name: "text and bool fields",
			body: `{"title":"New","swot_analysis":"S","is_favorite":true}`,
			wantColumns: map[string]any{
				"title":         "New",
				"swot_analysis": "S",
				"is_favorite":   true,
			},
		},
		{
			name:        "unknown and protected keys are ignored",
			body:        `{"user_id":"x","id":"y","created_at":"z","industry":"health"}`,
			wantColumns: map[string]any{"industry": "health"},
			wantIgnored: []string{"created_at", "id", "user_id"},
		},
		{
			name:    "wrong type",
			body:    `{"title":42}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			body:    `[1,2]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, ignored, err := DecodeIdeaUpdate([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumns, update.Columns())
			assert.Equal(t, len(tt.wantColumns) == 0, update.Empty())
			assert.Equal(t, tt.wantIgnored, ignored)
		})
	}
}

package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtyInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []SpecialtyInput
		wantErr  bool
	}{
		{
			name:     "bare strings",
			payload:  `["Ceylon Cinnamon", "Black Pepper"]`,
			expected: []SpecialtyInput{{Label: "Ceylon Cinnamon"}, {Label: "Black Pepper"}},
		},
		{
			name:     "objects with priority",
			payload:  `[{"label": "Ceylon Cinnamon", "priority": 2}]`,
			expected: []SpecialtyInput{{Label: "Ceylon Cinnamon", Priority: 2}},
		},
		{
			name:     "mixed shapes in one list",
			payload:  `["Black Pepper", {"label": "Ceylon Cinnamon", "priority": 1}]`,
			expected: []SpecialtyInput{{Label: "Black Pepper"}, {Label: "Ceylon Cinnamon", Priority: 1}},
		},
		{
			name:    "number is neither shape",
			payload: `[42]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []SpecialtyInput
			err := json.Unmarshal([]byte(tt.payload), &got)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

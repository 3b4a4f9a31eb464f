package rest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TagList
		wantErr  bool
	}{
		{
			name:     "comma string trimmed and empties dropped",
			input:    `" a, b ,, c "`,
			expected: TagList{"a", "b", "c"},
		},
		{
			name:     "array passed through unchanged",
			input:    `["  spaced  ", "b", ""]`,
			expected: TagList{"  spaced  ", "b", ""},
		},
		{
			name:     "empty string yields empty list",
			input:    `""`,
			expected: TagList{},
		},
		{
			name:     "only separators yields empty list",
			input:    `" , ,, "`,
			expected: TagList{},
		},
		{
			name:     "order preserved",
			input:    `"z, a, m"`,
			expected: TagList{"z", "a", "m"},
		},
		{
			name:     "null leaves list nil",
			input:    `null`,
			expected: nil,
		},
		{
			name:    "number rejected",
			input:   `42`,
			wantErr: true,
		},
		{
			name:    "object rejected",
			input:   `{"a":1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tags TagList
			err := json.Unmarshal([]byte(tt.input), &tags)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tags)
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, TagList{"a", "b", "c"}, SplitTags(" a, b ,, c "))
	assert.Equal(t, TagList{}, SplitTags(""))
	assert.Equal(t, TagList{"solo"}, SplitTags("solo"))
}

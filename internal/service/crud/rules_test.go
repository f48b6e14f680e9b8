package crud

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula/nebula-backend/internal/domain"
)

func messages(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected *domain.ValidationError, got %v", err)
	return ve.Messages()
}

func TestRules_Valid(t *testing.T) {
	t.Parallel()

	var r Rules
	assert.True(t, r.Text("text", "Text", "buy milk", MaxTextLength))
	assert.True(t, r.Name("firstName", "First name", "Jean-Luc O'Neil"))
	assert.True(t, r.Valid())
	assert.NoError(t, r.Err())
}

func TestRules_Required(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "   ", "\t\n"} {
		var r Rules
		assert.False(t, r.Required("text", "Text", v))
		assert.Equal(t, []string{"Text is required."}, messages(t, r.Err()))
	}
}

func TestRules_MaxLength_CountsCharacters(t *testing.T) {
	t.Parallel()

	var r Rules
	// 100 two-byte runes are 200 bytes but only 100 characters.
	assert.True(t, r.MaxLength("firstName", "First name", strings.Repeat("é", 100), MaxNameLength))
	assert.False(t, r.MaxLength("firstName", "First name", strings.Repeat("é", 101), MaxNameLength))

	assert.Equal(t, []string{"First name cannot exceed 100 characters."}, messages(t, r.Err()))
}

func TestRules_TextAtLimit(t *testing.T) {
	t.Parallel()

	var r Rules
	assert.True(t, r.Text("text", "Text", strings.Repeat("a", MaxTextLength), MaxTextLength))
	assert.False(t, r.Text("text", "Text", strings.Repeat("a", MaxTextLength+1), MaxTextLength))
	assert.Equal(t, []string{"Text cannot exceed 2000 characters."}, messages(t, r.Err()))
}

func TestRules_NameCharacterClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		ok    bool
	}{
		{"Ada", true},
		{"Zoë", true},
		{"Mary Ann", true},
		{"D'Arcy", true},
		{"Smith-Jones", true},
		{"Ada1", false},
		{"R2D2", false},
		{"a_b", false},
		{"Ada!", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			var r Rules
			assert.Equal(t, tt.ok, r.Name("firstName", "First name", tt.value))
			if !tt.ok {
				assert.Equal(t, []string{"First name contains invalid characters."}, messages(t, r.Err()))
			}
		})
	}
}

func TestRules_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	var r Rules
	r.Name("firstName", "First name", "")
	r.Name("lastName", "Last name", "B4d")
	r.Add("name", "custom")

	assert.False(t, r.Valid())
	assert.Equal(t, []string{
		"First name is required.",
		"First name contains invalid characters.",
		"Last name contains invalid characters.",
		"custom",
	}, messages(t, r.Err()))
}

func TestRules_NameReportsEveryFailedRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "too long with digit",
			value: strings.Repeat("a", MaxNameLength) + "1",
			want:  []string{"First name cannot exceed 100 characters.", "First name contains invalid characters."},
		},
		{
			name:  "whitespace only",
			value: "   ",
			want:  []string{"First name is required.", "First name contains invalid characters."},
		},
		{
			name:  "too long letters only",
			value: strings.Repeat("a", MaxNameLength+1),
			want:  []string{"First name cannot exceed 100 characters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var r Rules
			assert.False(t, r.Name("firstName", "First name", tt.value))
			assert.Equal(t, tt.want, messages(t, r.Err()))
		})
	}
}

func TestRules_TextReportsRequiredAndLengthIndependently(t *testing.T) {
	t.Parallel()

	var r Rules
	assert.False(t, r.Text("text", "Text", strings.Repeat(" ", MaxTextLength+1), MaxTextLength))
	assert.Equal(t, []string{"Text is required.", "Text cannot exceed 2000 characters."}, messages(t, r.Err()))
}

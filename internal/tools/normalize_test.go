package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "507f1f77bcf86cd799439011"

func TestSplitComposite(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitComposite("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitComposite(" a , b "))
	assert.Equal(t, []string{"a"}, SplitComposite("a"))
	assert.Equal(t, []string{"", ""}, SplitComposite(","))
}

func TestParseIdentityAndDays(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantID   string
		wantDays int
		wantErr  bool
	}{
		{name: "bare id uses default", input: validID, wantID: validID, wantDays: 30},
		{name: "explicit days", input: validID + ",60", wantID: validID, wantDays: 60},
		{name: "padded parts", input: " " + validID + " , 60 ", wantID: validID, wantDays: 60},
		{name: "unparsable days falls back", input: validID + ",notanumber", wantID: validID, wantDays: 30},
		{name: "negative days falls back", input: validID + ",-5", wantID: validID, wantDays: 30},
		{name: "zero days falls back", input: validID + ",0", wantID: validID, wantDays: 30},
		{name: "malformed id rejected", input: "notanid,60", wantErr: true},
		{name: "empty input rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, days, err := ParseIdentityAndDays(tt.input, 30)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestParseIdentityAndTime(t *testing.T) {
	id, punchIn, err := ParseIdentityAndTime(validID + ",09:15")
	require.NoError(t, err)
	assert.Equal(t, validID, id)
	assert.Equal(t, "09:15", punchIn)

	id, punchIn, err = ParseIdentityAndTime(validID)
	require.NoError(t, err)
	assert.Equal(t, validID, id)
	assert.Empty(t, punchIn)

	// The time part is passed through untouched; validity is judged by the
	// marking request, not here.
	_, punchIn, err = ParseIdentityAndTime(validID + ",25:99")
	require.NoError(t, err)
	assert.Equal(t, "25:99", punchIn)

	_, _, err = ParseIdentityAndTime("notanid,09:15")
	require.Error(t, err)
}

func TestParseNameAndDays(t *testing.T) {
	name, days := ParseNameAndDays("Engineering", 30)
	assert.Equal(t, "Engineering", name)
	assert.Equal(t, 30, days)

	name, days = ParseNameAndDays("Engineering,60", 30)
	assert.Equal(t, "Engineering", name)
	assert.Equal(t, 60, days)

	name, days = ParseNameAndDays("Engineering,abc", 30)
	assert.Equal(t, "Engineering", name)
	assert.Equal(t, 30, days)
}

func TestParseDays(t *testing.T) {
	assert.Equal(t, 7, ParseDays("7", 30))
	assert.Equal(t, 7, ParseDays(" 7 ", 30))
	assert.Equal(t, 30, ParseDays("", 30))
	assert.Equal(t, 30, ParseDays("abc", 30))
	assert.Equal(t, 30, ParseDays("0", 30))
	assert.Equal(t, 30, ParseDays("-1", 30))
}

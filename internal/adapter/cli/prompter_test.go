package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPrompter_Ask(t *testing.T) {
	p, out := newTestPrompter("  alice  \nlast")

	answer, err := p.Ask("Username")
	require.NoError(t, err)
	assert.Equal(t, "alice", answer)
	assert.Equal(t, "Username: ", out.String())

	answer, err = p.Ask("Again")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.Ask("Gone")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_AskRequired(t *testing.T) {
	p, out := newTestPrompter("\n\nbob\n")

	answer, err := p.AskRequired("Recipient")
	require.NoError(t, err)
	assert.Equal(t, "bob", answer)
	assert.Equal(t, 2, strings.Count(out.String(), "Recipient is required."))
}

func TestPrompter_AskFloat(t *testing.T) {
	p, out := newTestPrompter("abc\n250,000\n\n")

	v, err := p.AskFloat("Price", false)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 250000.0, *v)
	assert.Contains(t, out.String(), "Please enter a number.")

	v, err = p.AskFloat("Price", false)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPrompter_AskChoice(t *testing.T) {
	p, out := newTestPrompter("castle\nHOUSE\n\n")
	options := []string{"house", "land"}

	choice, err := p.AskChoice("Type", options, "")
	require.NoError(t, err)
	assert.Equal(t, "house", choice)
	assert.Contains(t, out.String(), "Type (house/land): ")
	assert.Contains(t, out.String(), "Please choose one of: house, land")

	choice, err = p.AskChoice("Type", options, "land")
	require.NoError(t, err)
	assert.Equal(t, "land", choice)
}

func TestPrompter_ConfirmAndList(t *testing.T) {
	p, _ := newTestPrompter("Y\nmaybe\n a , ,b \n")

	ok, err := p.Confirm("Submit?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm("Submit?")
	require.NoError(t, err)
	assert.False(t, ok)

	items, err := p.AskList("URLs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirmDeletionAcceptsYes(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", "YES", "  y  \n"} {
		var out bytes.Buffer
		ok, err := confirmDeletion(strings.NewReader(answer), &out, 3)
		require.NoError(t, err)
		require.True(t, ok, "answer %q should confirm", answer)
		require.Contains(t, out.String(), "Do you want to permanently delete the 3 directories/files listed above?")
	}
}

func TestConfirmDeletionRejectsAnythingElse(t *testing.T) {
	for _, answer := range []string{"n", "no", "", "maybe"} {
		var out bytes.Buffer
		ok, err := confirmDeletion(strings.NewReader(answer+"\n"), &out, 1)
		require.NoError(t, err)
		require.False(t, ok, "answer %q should not confirm", answer)
	}
}

func TestConfirmDeletionEOFIsNotConfirmed(t *testing.T) {
	var out bytes.Buffer
	ok, err := confirmDeletion(strings.NewReader(""), &out, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbos/woordwacht/internal/config"
	"github.com/mbos/woordwacht/internal/synth"
)

func TestGenerateCommandProducesPasswords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fiets\ntulp\nkaas\ndijk\nmarkt\nstrand\ngracht\n"))
	}))
	t.Cleanup(server.Close)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "-n", "3", "--no-cache", "--url", server.URL})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Fields(strings.TrimSpace(out.String()))
	require.Len(t, lines, 3)
	for _, password := range lines {
		assert.True(t, synth.IsSecure(password, 10, config.DefaultSpecials),
			"password %q fails the security predicate", password)
	}
}

func TestGenerateCommandRejectsEmptySpecials(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"generate", "--specials", "", "--no-cache"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "special character set")
}

func TestGenerateCommandRejectsZeroMinLength(t *testing.T) {
	// An explicit zero is a configuration error, not a request for the
	// default: the command must fail before any generation.
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"generate", "--min-length", "0", "--no-cache"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum password length")
}

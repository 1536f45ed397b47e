package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	jsonOutput = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExtractCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "", "extract", "--json", "see", "http://example.com", "#go", "@gopher")
	require.NoError(t, err)

	var got []entityOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []entityOutput{
		{Kind: "url", Start: 4, End: 22, Value: "http://example.com"},
		{Kind: "hashtag", Start: 23, End: 26, Value: "go"},
		{Kind: "mention", Start: 27, End: 34, Value: "gopher"},
	}, got)
}

func TestExtractCmd_Stdin(t *testing.T) {
	out, err := runCmd(t, "#golang\n", "extract")
	require.NoError(t, err)
	assert.Contains(t, out, "hashtag")
	assert.Contains(t, out, "golang")
}

func TestAutolinkCmd(t *testing.T) {
	out, err := runCmd(t, "", "autolink", "--target", "_blank", "hi @bob")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://twitter.com/bob"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.True(t, strings.HasPrefix(out, "hi "))
}

func TestSignCmd(t *testing.T) {
	t.Setenv("TWIC_CONSUMER_KEY", "xvz1evFS4wEEPTGEFPHBog")
	t.Setenv("TWIC_CONSUMER_SECRET", "kAcSOqF21Fu85e7zjz7ZN2U4ZRhfV3WpwPAoE3Z7kBw")

	out, err := runCmd(t, "", "sign", "--json",
		"--token", "370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb",
		"--token-secret", "LswwdoUaIvS8ltyTt5jkRh4J50vUPVVHtR2YPi5kE",
		"--timestamp", "1318622958",
		"--nonce", "kYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg",
		"POST", "https://api.twitter.com/1.1/statuses/update.json",
		"include_entities=true",
		"status=Hello Ladies + Gentlemen, a signed OAuth request!",
	)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "hCtSmYh+iHYCEqBWrE7C7hYmtUk=", got["signature"])
	assert.Equal(t, "https://api.twitter.com/1.1/statuses/update.json", got["target"])
	assert.True(t, strings.HasPrefix(got["base_string"], "POST&https%3A%2F%2Fapi.twitter.com"))
}

func TestSignCmd_BadParam(t *testing.T) {
	t.Setenv("TWIC_CONSUMER_KEY", "ck")
	t.Setenv("TWIC_CONSUMER_SECRET", "cs")

	_, err := runCmd(t, "", "sign", "GET", "https://api.twitter.com/1.1/x.json", "novalue")
	assert.ErrorContains(t, err, "expected key=value")
}

func TestAccountsCmd_Empty(t *testing.T) {
	t.Setenv("TWIC_CONSUMER_KEY", "ck")
	t.Setenv("TWIC_CONSUMER_SECRET", "cs")
	t.Setenv("TWIC_ACCOUNT_DIR", t.TempDir())

	out, err := runCmd(t, "", "accounts")
	require.NoError(t, err)
	assert.Contains(t, out, "No stored accounts")
}

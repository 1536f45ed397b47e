package twic

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anatolykoptev/go-twic/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestToken(t *testing.T) {
	c, ft := newTestClient(t, fakeResponse{
		status: 200,
		body:   "oauth_token=req-tok&oauth_token_secret=req-secret&oauth_callback_confirmed=true",
	})

	tok, err := c.RequestToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, oauth.Token{Token: "req-tok", Secret: "req-secret"}, tok)

	call := ft.Calls()[0]
	assert.Equal(t, "POST", call.method)
	assert.Equal(t, "https://api.twitter.com/oauth/request_token", call.url)
	vals := call.params(t)
	assert.Equal(t, "oob", vals.Get("oauth_callback"))
	assert.False(t, vals.Has("oauth_token"))
	assertSigned(t, call, "")

	assert.Equal(t, "https://api.twitter.com/oauth/authorize?oauth_token=req-tok", AuthorizeURL(tok))
}

func TestRequestToken_NotConfirmed(t *testing.T) {
	c, _ := newTestClient(t, fakeResponse{status: 200, body: "oauth_token=a&oauth_token_secret=b"})
	_, err := c.RequestToken(context.Background())
	assert.ErrorContains(t, err, "callback not confirmed")
}

func TestAccessToken(t *testing.T) {
	c, ft := newTestClient(t, fakeResponse{
		status: 200,
		body:   "oauth_token=10-access&oauth_token_secret=access-secret&user_id=10&screen_name=gopher\n",
	})
	reqTok := oauth.Token{Token: "req-tok", Secret: "req-secret"}

	acc, err := c.AccessToken(context.Background(), reqTok, " 1234567 ")
	require.NoError(t, err)
	assert.Equal(t, "10", acc.UserID)
	assert.Equal(t, "gopher", acc.ScreenName)
	assert.Equal(t, oauth.Token{Token: "10-access", Secret: "access-secret"}, acc.Token)

	call := ft.Calls()[0]
	assert.Equal(t, "https://api.twitter.com/oauth/access_token", call.url)
	vals := call.params(t)
	assert.Equal(t, "1234567", vals.Get("oauth_verifier"))
	assert.Equal(t, "req-tok", vals.Get("oauth_token"))
	assertSigned(t, call, "req-secret")
}

func TestAccessToken_Errors(t *testing.T) {
	c, ft := newTestClient(t, fakeResponse{status: 401, body: "Invalid request token."})

	_, err := c.AccessToken(context.Background(), oauth.Token{Token: "a", Secret: "b"}, "")
	assert.ErrorContains(t, err, "empty PIN")
	assert.Empty(t, ft.Calls())

	_, err = c.AccessToken(context.Background(), oauth.Token{Token: "a", Secret: "b"}, "999")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAccountStore(t *testing.T) {
	c, _ := newTestClient(t)

	names, err := c.Accounts()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = c.LoadAccount("gopher")
	assert.ErrorIs(t, err, ErrNoAccount)

	require.NoError(t, c.SaveAccount(&Account{UserID: "10", ScreenName: "Gopher", Token: oauth.Token{Token: "t", Secret: "s"}}))
	require.NoError(t, c.SaveAccount(&Account{UserID: "11", ScreenName: "alice", Token: oauth.Token{Token: "t2", Secret: "s2"}}))

	acc, err := c.LoadAccount("GOPHER")
	require.NoError(t, err)
	assert.Equal(t, "10", acc.UserID)
	assert.Equal(t, oauth.Token{Token: "t", Secret: "s"}, acc.Token)
	assert.False(t, acc.SavedAt.IsZero())

	names, err = c.Accounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "gopher"}, names)

	info, err := os.Stat(filepath.Join(c.cfg.AccountDir, "gopher.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	assert.Error(t, c.SaveAccount(&Account{}))
}

func TestAccountStore_EmptyToken(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bob.json"), []byte(`{"screen_name":"bob"}`), 0600))

	_, err := loadAccount(dir, "bob")
	assert.ErrorIs(t, err, ErrNoAccount)
}

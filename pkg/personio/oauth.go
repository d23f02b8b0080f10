package personio

import "golang.org/x/oauth2"

// OAuth2Token exposes the credential to oauth2 aware HTTP clients.
func (t *AccessToken) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: t.Token.Reveal(),
		TokenType:   "Bearer",
		Expiry:      t.TimeStampExpires,
	}
}

func (t *AccessToken) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(t.OAuth2Token())
}

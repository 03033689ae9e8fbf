package app

import (
	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/client"
	"github.com/gadgetstore/storefront/internal/core/navigator"
	"github.com/gadgetstore/storefront/internal/core/store"
	"github.com/gadgetstore/storefront/internal/infrastructure/config"
	"github.com/gadgetstore/storefront/internal/infrastructure/storage"
)

// Storefront is the composed client core: the API client, the shared stores,
// and the navigator. Screen controllers are built on top of it as screens
// mount.
type Storefront struct {
	API     *client.Client
	Session *store.SessionStore
	Cart    *store.Cart
	Nav     *navigator.Navigator
}

// sessionTokens breaks the constructor cycle between the API client (which
// needs a token source) and the session store (which needs the client to log
// in). Until the store exists it reports no token.
type sessionTokens struct {
	session *store.SessionStore
}

func (t *sessionTokens) Token() string {
	if t.session == nil {
		return ""
	}
	return t.session.Token()
}

// NewStorefront wires the client core against cfg.APIBaseURL, persisting the
// session at cfg.SessionFile. Call Session.Restore once before rendering
// anything.
func NewStorefront(cfg config.ClientConfig, log zerolog.Logger) *Storefront {
	tokens := &sessionTokens{}
	api := client.New(cfg.APIBaseURL, tokens, client.WithLogger(log))

	session := store.NewSessionStore(api, storage.NewFileStorage(cfg.SessionFile), log)
	tokens.session = session

	return &Storefront{
		API:     api,
		Session: session,
		Cart:    store.NewCart(),
		Nav:     navigator.New(session, log),
	}
}

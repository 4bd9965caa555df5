// Package retriever fetches messages from a remote mailbox: it opens one
// session per call, searches the configured mailbox, fetches the selected
// messages in a single batch, hands each parsed message to an optional
// observer, marks everything it retrieved as seen, and guarantees the
// session is closed on every exit path.
package retriever

import (
	"strings"

	"mail-retriever/internal/config"
	imapclient "mail-retriever/internal/imap"
	"mail-retriever/internal/logging"
	"mail-retriever/internal/mailparse"
	"mail-retriever/internal/models"

	"github.com/google/uuid"
)

type Retriever struct {
	config *models.RetrieverConfig

	// newClient builds the transport for one call; each retrieval opens its
	// own session, so concurrent calls never share a connection.
	newClient func() imapclient.Client
}

// New creates a Retriever from the given settings merged over the defaults
// (localhost:110, INBOX, query "ALL", no SSL).
func New(overrides models.RetrieverConfig) *Retriever {
	return &Retriever{
		config: config.WithDefaults(overrides),
		newClient: func() imapclient.Client {
			return imapclient.NewStandardClient()
		},
	}
}

// Config returns the effective settings the retriever was built with.
func (r *Retriever) Config() models.RetrieverConfig {
	return *r.config
}

// First retrieves the oldest matching messages. Count defaults to 1.
func (r *Retriever) First(opts FindOptions) ([]*models.Email, error) {
	opts.What = ModeFirst
	return r.Find(opts)
}

// Last retrieves the newest matching messages. Count defaults to 1.
func (r *Retriever) Last(opts FindOptions) ([]*models.Email, error) {
	opts.What = ModeLast
	return r.Find(opts)
}

// All retrieves every matching message. Any caller-supplied count is
// overridden; a bounded scan must go through Find directly.
func (r *Retriever) All(opts FindOptions) ([]*models.Email, error) {
	opts.What = ModeAll
	opts.Count = CountAll
	return r.Find(opts)
}

// Find is the full entry point: it normalizes the request, opens a session,
// runs the search/fetch/flag plan inside it, and returns the retrieved
// messages in fetch order.
func (r *Retriever) Find(opts FindOptions) ([]*models.Email, error) {
	req, err := normalize(opts)
	if err != nil {
		return nil, err
	}

	var emails []*models.Email
	err = r.withSession(func(client imapclient.Client) error {
		var ferr error
		emails, ferr = r.fetch(client, req)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return emails, nil
}

// withSession acquires one session scoped to the call: connect,
// authenticate, select the target mailbox, run action, and close. The close
// runs exactly once on every exit path; a close failure is logged and never
// replaces the action's error.
func (r *Retriever) withSession(action func(imapclient.Client) error) error {
	if action == nil {
		return &InvalidUsageError{Reason: "withSession requires an action"}
	}

	client := r.newClient()
	if err := client.Connect(r.config.Address, r.config.Port, r.config.EnableSSL); err != nil {
		return &ConnectionError{Err: err}
	}
	defer func() {
		if err := client.Close(); err != nil {
			logging.Log.Warnf("Error closing session to %s: %v", r.config.Address, err)
		}
	}()

	// Anonymous and pre-authenticated servers take no login at all.
	if r.config.UserName != "" {
		if err := client.Login(r.config.UserName, r.config.Password); err != nil {
			return &AuthenticationError{Err: err}
		}
	}

	if err := client.SelectMailbox(r.config.Mailbox); err != nil {
		return &MailboxError{Mailbox: r.config.Mailbox, Err: err}
	}

	return action(client)
}

// fetch runs the retrieval plan inside an already-open session: search,
// select ids per the request, batch-fetch, parse and observe each message,
// then flag everything retrieved as seen. Flagging happens strictly after
// every message has been constructed, so a parse failure never leaves
// unread mail marked seen.
func (r *Retriever) fetch(client imapclient.Client, req request) ([]*models.Email, error) {
	locallog := logging.Log.WithField("session_id", uuid.New().String())

	ids, err := client.Search(strings.Fields(r.config.Query))
	if err != nil {
		return nil, &ProtocolError{Op: "search", Err: err}
	}

	ids = req.selectIDs(ids)
	if len(ids) == 0 {
		locallog.Debugf("Query %q matched no messages in %s", r.config.Query, r.config.Mailbox)
		return []*models.Email{}, nil
	}

	raws, err := client.FetchMessages(ids)
	if err != nil {
		return nil, &ProtocolError{Op: "fetch", Err: err}
	}

	emails := make([]*models.Email, 0, len(raws))
	for _, raw := range raws {
		email, err := mailparse.Parse(raw)
		if err != nil {
			return nil, &ProtocolError{Op: "parse", Err: err}
		}
		if req.onMessage != nil {
			req.onMessage(email)
		}
		emails = append(emails, email)
	}

	if err := client.MarkSeen(ids); err != nil {
		return nil, &ProtocolError{Op: "store", Err: err}
	}

	locallog.Debugf("Retrieved %d message(s) from %s", len(emails), r.config.Mailbox)
	return emails, nil
}

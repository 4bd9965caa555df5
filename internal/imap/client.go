package imap

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

type StandardClient struct {
	client  *client.Client
	timeout time.Duration
}

// NewStandardClient creates a new StandardClient with a default timeout of 30 seconds for IMAP operations
func NewStandardClient() *StandardClient {
	return &StandardClient{
		timeout: 30 * time.Second,
	}
}

// Connect establishes a connection to the IMAP server, using TLS when enableSSL is set. It returns an error if the connection fails.
func (c *StandardClient) Connect(address string, port int, enableSSL bool) error {
	addr := net.JoinHostPort(address, strconv.Itoa(port))

	var cl *client.Client
	var err error
	if enableSSL {
		cl, err = client.DialTLS(addr, nil)
	} else {
		cl, err = client.Dial(addr)
	}
	if err != nil {
		return fmt.Errorf("IMAP connection error: %w", err)
	}

	c.client = cl
	return nil
}

// Login authenticates the user with the IMAP server using the provided username and password. It returns an error if authentication fails or if there is no active connection.
func (c *StandardClient) Login(user, password string) error {
	if c.client == nil {
		return fmt.Errorf("not connected")
	}
	return c.client.Login(user, password)
}

// SelectMailbox selects the specified mailbox (e.g., "INBOX") for subsequent operations. It returns an error if the mailbox cannot be selected or if there is no active connection.
func (c *StandardClient) SelectMailbox(name string) error {
	if c.client == nil {
		return fmt.Errorf("not connected")
	}
	_, err := c.client.Select(name, false)
	return err
}

// Search runs a server-side search built from the given IMAP search keys (e.g. ["ALL"] or ["UNSEEN", "FROM", "x"]) and returns the matching identifiers in the server's native order, oldest first.
func (c *StandardClient) Search(terms []string) ([]uint32, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	fields := make([]interface{}, len(terms))
	for i, term := range terms {
		fields[i] = term
	}

	criteria := imap.NewSearchCriteria()
	if err := criteria.ParseWithCharset(fields, nil); err != nil {
		return nil, fmt.Errorf("invalid search query %q: %w", terms, err)
	}

	ids, err := c.client.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("error searching mailbox: %w", err)
	}

	return ids, nil
}

// FetchMessages retrieves the full payload for every given identifier in a single batched round-trip. It returns the fetched messages in the order the server streams them and an error if the fetch fails or there is no active connection.
func (c *StandardClient) FetchMessages(ids []uint32) ([]RawMessage, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(ids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchInternalDate}

	prevTimeout := c.client.Timeout
	c.client.Timeout = c.timeout
	defer func() { c.client.Timeout = prevTimeout }()

	messages := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)

	go func() {
		done <- c.client.Fetch(seqSet, items, messages)
	}()

	raws := make([]RawMessage, 0, len(ids))
	var readErr error
	for msg := range messages {
		r := msg.GetBody(section)
		if r == nil {
			readErr = fmt.Errorf("no body returned for message %d", msg.SeqNum)
			continue
		}
		body, err := io.ReadAll(r)
		if err != nil {
			readErr = fmt.Errorf("error reading body of message %d: %w", msg.SeqNum, err)
			continue
		}
		raws = append(raws, RawMessage{
			ID:           msg.SeqNum,
			InternalDate: msg.InternalDate,
			Body:         body,
		})
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("error fetching messages: %w", err)
	}
	if readErr != nil {
		return nil, readErr
	}

	return raws, nil
}

// MarkSeen flags every given identifier as seen (read) on the IMAP server in one batched store call. It returns an error if the store operation fails or if there is no active connection.
func (c *StandardClient) MarkSeen(ids []uint32) error {
	if c.client == nil {
		return fmt.Errorf("not connected")
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(ids...)

	item := imap.FormatFlagsOp(imap.AddFlags, true)
	flags := []interface{}{imap.SeenFlag}

	return c.client.Store(seqSet, item, flags, nil)
}

// Close logs out from the IMAP server and closes the connection. It returns an error if the logout operation fails. If there is no active connection, it simply returns nil.
func (c *StandardClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Logout()
}

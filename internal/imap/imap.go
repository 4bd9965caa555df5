package imap

import "time"

// RawMessage is one fetched message payload: the server-assigned identifier,
// the server's internal date, and the full RFC-822 bytes.
type RawMessage struct {
	ID           uint32
	InternalDate time.Time
	Body         []byte
}

// Client is the session transport: one authenticated, mailbox-selected
// connection, valid for a single retrieval call.
type Client interface {
	Connect(address string, port int, enableSSL bool) error
	Login(user, password string) error
	SelectMailbox(name string) error
	Search(terms []string) ([]uint32, error)
	FetchMessages(ids []uint32) ([]RawMessage, error)
	MarkSeen(ids []uint32) error
	Close() error
}

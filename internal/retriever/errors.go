package retriever

import "fmt"

// InvalidUsageError reports a programming error in how the retriever was
// invoked, detected before any network I/O.
type InvalidUsageError struct {
	Reason string
}

func (e *InvalidUsageError) Error() string {
	return "invalid usage: " + e.Reason
}

// InvalidRequestError reports a request that cannot be normalized, such as a
// negative message count.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

// ConnectionError wraps a failure to open the transport to the server.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// AuthenticationError wraps a rejected login.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// MailboxError wraps a failure to select the target mailbox.
type MailboxError struct {
	Mailbox string
	Err     error
}

func (e *MailboxError) Error() string {
	return fmt.Sprintf("cannot select mailbox %q: %v", e.Mailbox, e.Err)
}

func (e *MailboxError) Unwrap() error { return e.Err }

// ProtocolError wraps a search, fetch, parse or store failure at the wire
// level. Op names the operation that failed.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error during %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

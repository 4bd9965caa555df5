package retriever

import (
	"fmt"

	"mail-retriever/internal/models"
)

// Mode selects which end of the mailbox a retrieval targets.
type Mode string

const (
	ModeFirst Mode = "first"
	ModeLast  Mode = "last"
	ModeAll   Mode = "all"
)

// Order is accepted on every request for interface compatibility, but the
// result is never re-sorted by it: the only ordering effects are the mode
// and the server's fetch order. Kept as-is deliberately.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// CountAll requests every message matched by the search, with no truncation.
const CountAll = -1

// FindOptions is the caller-facing request. Zero values mean "unset" and are
// filled in by normalization: What defaults to first, Count to 1 (CountAll
// when What is all), Order to ascending. OnMessage, when non-nil, is invoked
// synchronously with each message in fetch order before it is added to the
// result.
type FindOptions struct {
	What      Mode
	Count     int
	Order     Order
	OnMessage func(*models.Email)
}

// request is a fully-populated FindOptions, produced once per call.
type request struct {
	what      Mode
	count     int
	order     Order
	onMessage func(*models.Email)
}

// normalize validates a possibly-partial FindOptions and fills in the
// defaults. It is pure: no I/O, and the only failure is a request that makes
// no sense (negative count, unknown mode or order).
func normalize(opts FindOptions) (request, error) {
	req := request{
		what:      opts.What,
		count:     opts.Count,
		order:     opts.Order,
		onMessage: opts.OnMessage,
	}

	if req.what == "" {
		req.what = ModeFirst
	}
	switch req.what {
	case ModeFirst, ModeLast, ModeAll:
	default:
		return request{}, &InvalidRequestError{Reason: fmt.Sprintf("unknown mode %q", req.what)}
	}

	switch {
	case req.count == 0:
		// Unset: all retrieves everything, first and last one message.
		if req.what == ModeAll {
			req.count = CountAll
		} else {
			req.count = 1
		}
	case req.count == CountAll:
	case req.count < 0:
		return request{}, &InvalidRequestError{Reason: fmt.Sprintf("count must be positive, got %d", req.count)}
	}

	if req.order == "" {
		req.order = OrderAsc
	}
	switch req.order {
	case OrderAsc, OrderDesc:
	default:
		return request{}, &InvalidRequestError{Reason: fmt.Sprintf("unknown order %q", req.order)}
	}

	return req, nil
}

// selectIDs applies the mode and count to the identifiers a search returned,
// which arrive in the server's native order, oldest first. first keeps the
// head of the sequence, last keeps the tail; either way the selected ids
// stay in ascending mailbox order. Asking for more than exists is not an
// error: everything available is kept.
func (r request) selectIDs(ids []uint32) []uint32 {
	if r.count == CountAll || r.count >= len(ids) {
		return ids
	}
	if r.what == ModeLast {
		return ids[len(ids)-r.count:]
	}
	return ids[:r.count]
}

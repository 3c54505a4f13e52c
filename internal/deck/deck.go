// Package deck models the host slide document: named document-scoped
// data blocks plus per-page string metadata. The host offers only
// whole-value read/write on both, so every mutation here is a full
// read-modify-write cycle with no locking; callers are expected to
// serialize mutating calls against the same document.
package deck

import "context"

// Document is the host document surface consumed by the citation core.
type Document interface {
	// Block returns the value of a document-scoped data block, or ""
	// when the block does not exist.
	Block(ctx context.Context, name string) (string, error)

	// SetBlock overwrites a document-scoped data block, creating it if
	// absent.
	SetBlock(ctx context.Context, name, value string) error

	// DeleteBlock removes a document-scoped data block. Deleting an
	// absent block is not an error.
	DeleteBlock(ctx context.Context, name string) error

	// Pages returns the document's pages in presentation order.
	Pages(ctx context.Context) ([]Page, error)
}

// Page is one slide page with a key-value metadata surface.
type Page interface {
	// ID returns the page's stable identifier within its document.
	ID() string

	// Metadata returns the value stored under key, or "" when unset.
	Metadata(ctx context.Context, key string) (string, error)

	// SetMetadata stores value under key. An empty value clears the
	// slot (page metadata with an empty value is indistinguishable
	// from absent metadata).
	SetMetadata(ctx context.Context, key, value string) error
}

package storage

// Store is the durable key/value substrate session state survives on.
// Read reports absence through the boolean rather than an error so callers
// can treat "never saved" and "saved then wiped" the same way.
type Store interface {
	// Read returns the raw document for key.
	// Returns data, true on a hit; nil, false when no document exists.
	Read(key string) ([]byte, bool, error)

	// Write replaces the document for key in full.
	Write(key string, data []byte) error

	// Delete removes the document for key entirely. Deleting an absent
	// key is not an error.
	Delete(key string) error
}

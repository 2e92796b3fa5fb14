// Package storage provides the persistence substrate for the storefront:
// named JSON blobs addressed by string keys, mirroring the browser
// local-storage contract. The last writer for a key wins; there is no
// locking or change notification across processes.
package storage

// Store reads and writes named blobs. Get returns errors.ErrNoItem when
// nothing is stored under the key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

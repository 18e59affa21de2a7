// Blob persistence for the kv backend: the in-memory database image is
// serialized as the backup document and stored under one fixed key in a
// local BadgerDB.
package sqlite

import (
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
)

// blobKey is the fixed key holding the serialized database image.
const blobKey = "tally/image"

// BlobDirName is the BadgerDB directory of the kv backend, under DataDir.
const BlobDirName = "blob"

// openBlob opens the BadgerDB blob store under dataDir.
func openBlob(dataDir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(filepath.Join(dataDir, BlobDirName)).WithLogger(nil)
	return badger.Open(opts)
}

// readBlob returns the stored image, or found=false when no image has
// been persisted yet.
func readBlob(kv *badger.DB) (data []byte, found bool, err error) {
	err = kv.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// snapshot persists the full database image to the blob store, making
// every kv-backend write O(database size). The file backend has no blob
// store and returns immediately. A failed snapshot does not fail the
// write that triggered it: the in-memory state stays authoritative and
// the next mutation overwrites the blob again.
func (s *Store) snapshot() {
	if s.kv == nil {
		return
	}
	doc, err := s.exportDocument()
	if err != nil {
		return
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	_ = s.kv.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(blobKey), data)
	})
}

package core

import "github.com/google/btree"

const keyDirTreeOrder = 3

// KeyDir is the in-memory index mapping each live key to the byte offset
// of the most recent Set record for that key in the log file.
//
// It is the primary structure used to service read requests without
// scanning the log. The KeyDir is rebuilt on startup by replaying the
// log file from the beginning.
//
// Alongside the map, keys are kept in a balanced tree so that Keys can
// return them in sorted order without re-sorting on every call.
type KeyDir struct {
	entries map[string]uint64
	tree    *btree.BTreeG[string]
}

// NewKeyDir returns an empty index.
func NewKeyDir() *KeyDir {
	return &KeyDir{
		entries: make(map[string]uint64),
		tree:    btree.NewOrderedG[string](keyDirTreeOrder),
	}
}

// Put records offset as the location of the latest Set record for key.
func (kd *KeyDir) Put(key string, offset uint64) {
	kd.entries[key] = offset
	kd.tree.ReplaceOrInsert(key)
}

// Lookup returns the offset of the latest Set record for key.
func (kd *KeyDir) Lookup(key string) (uint64, bool) {
	offset, ok := kd.entries[key]
	return offset, ok
}

// Remove drops key from the index, reporting whether it was present.
func (kd *KeyDir) Remove(key string) bool {
	if _, ok := kd.entries[key]; !ok {
		return false
	}

	delete(kd.entries, key)
	kd.tree.Delete(key)
	return true
}

// Len returns the number of live keys.
func (kd *KeyDir) Len() int {
	return len(kd.entries)
}

// Keys returns all live keys in ascending order.
func (kd *KeyDir) Keys() []string {
	keys := make([]string, 0, kd.tree.Len())
	kd.tree.Ascend(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

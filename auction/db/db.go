// Package db defines the ability to create a new database
// for the auction daemon.
package db

import (
	"github.com/gixlabs/gix/auction/db/kv"
)

// NewDB initializes a new database in the data directory.
func NewDB(dirPath string) (Database, error) {
	return kv.NewKVStore(dirPath)
}

package db

import "github.com/gixlabs/gix/auction/db/iface"

// ReadOnlyDatabase exposes the read paths of the auction store.
type ReadOnlyDatabase = iface.ReadOnlyDatabase

// Database is the full auction storage interface.
type Database = iface.Database

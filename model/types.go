package model

// Oid is a store-local object identifier.
//
// Oids are assigned by a Store from an instance-local, monotonically
// increasing counter starting at 1. Once assigned to a value that is
// later deleted, an Oid is never reused for the lifetime of that Store.
type Oid uint64

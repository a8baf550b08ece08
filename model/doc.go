// Package model defines the identity types shared across dimstore.
//
// # Identity Types
//
//   - Oid: store-local object identifier, unique for the lifetime of a
//     Store instance and never reused once freed.
package model

// Package usermap is an in-memory store of user credential records keyed by
// username.
//
// Records live in a single slot array using open addressing with linear
// probing. Insert probes forward from the home slot to the first empty one.
// When the load factor reaches the threshold (0.75 by default) the array
// doubles and every record is re-placed at its new home slot.
//
// Two placement behaviors are kept deliberately:
//
//   - Lookup, Contains and UpdatePassword examine only the home slot, so a
//     record displaced by a collision is not found, and a second Insert of the
//     same username succeeds.
//   - Growth does not probe; records sharing a home slot in the new array
//     overwrite one another, while Size still counts every placement.
//
// Each record stores a random salt and the digest of secret+salt.
// UpdatePassword requires the current secret and replaces salt and digest together.
//
// Basic usage:
//
//	t, err := usermap.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := t.Insert("alice", "s3cret"); err != nil {
//		log.Fatal(err)
//	}
//	rec, err := t.Lookup("alice")
//	if err == nil && rec.Verify("s3cret") {
//		fmt.Println(rec)
//	}
package usermap

// Package session keeps a client's view of "who is logged in" against the
// catalog API.
//
// Two views share one storage backend. The unified view ([Auth]) owns the
// authToken/authUser keys and knows the role. The legacy customer view
// ([CustomerAuth]) reads customerToken/customerUser so older screens keep
// working. The legacy view's in-memory user only changes when
// [CustomerAuth.SyncFromStorage] runs; [Auth] calls it after every write it
// makes, so callers that go through [Auth] never need to.
//
// An [Auth] is not safe for concurrent use. Construct one per application
// instance and hand it to the guards and screens that need it.
package session

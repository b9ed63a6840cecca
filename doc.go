// Package cite is a Go client for the CITE evaluation platform. It keeps
// local entity stores (users, teams, evaluations, moves, submissions,
// scoring models and their memberships) consistent with the server over
// two paths: a typed REST client for reads and writes, and a persistent
// hub connection that folds server broadcasts into the same stores.
//
// Stores publish behavior-subject streams: subscribers get the current
// snapshot immediately and every change after it. Reads that fail leave
// a store empty; writes that fail are returned to the caller and never
// touch a store.
//
// Construct a Client from settings and an auth token source, load the
// collections you need, then Connect to track everyone else's changes:
//
//	s, err := settings.Load("")
//	c, err := cite.New(s, cite.StaticAuth(token))
//	c.Evaluations.Load(ctx)
//	err = c.Connect(ctx)
package cite

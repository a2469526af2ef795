// Package gitctx reads repository identity from a local git checkout.
//
// The CLI uses [Origin] as the last source of the repository owner and name,
// after flags, the environment and the config file.
package gitctx

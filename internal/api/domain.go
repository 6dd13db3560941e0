package api

import "github.com/JaimeStill/shows-api/internal/shows"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Shows shows.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Shows: shows.New(runtime.Store, runtime.Logger),
	}
}

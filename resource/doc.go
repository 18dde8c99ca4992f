package resource

// Package resource abstracts "turn a location string into an openable byte
// stream" so callers can plug in their own resolution (OS filesystem,
// embedded fs.FS bundles, in-memory data) without the loader knowing about
// schemes or storage.
//
// Fixed contract:
//   Resolver.Resolve(location) -> Resource
//   Resource.Open()            -> io.ReadCloser
//
// Locations understood by the default resolver (examples):
//   /etc/app/users.properties
//   file:/etc/app/users.properties

// Package pathres locates user-named model files across an ordered set of
// search roots.
//
// A request string may be an absolute path, a path relative to one of the
// configured roots, or a bare filename. Windows host paths (C:\Users\...)
// are rewritten to their location under the container mount root before any
// probing. When no candidate exists on disk, existing filenames are ranked
// by similarity to the requested name and returned as suggestions.
//
// The set of active roots is recomputed from the live filesystem on every
// resolution call. The hosting environment's mounts change between desktop
// and container runs, so nothing here is cached.
package pathres

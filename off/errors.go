package off

import "errors"

// ErrMalformedInput is returned for any OFF file that cannot be read back
// into a manifold triangle mesh: a bad header, a wrong element count on
// any line, a non-triangular face (the leading valence must be 3), or a
// half-edge left without a twin once every face has been loaded.
var ErrMalformedInput = errors.New("off: malformed input")

package tinyjambu

import "errors"

// errAuthFailed is returned by Open when tag verification fails. Any
// plaintext bytes written to dst before this point have been zeroed.
var errAuthFailed = errors.New("tinyjambu: authentication failed")

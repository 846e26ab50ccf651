package argv

import "errors"

// ErrFlagValue indicates that a scanned option value was rejected by the
// registered flag it was fed to.
var ErrFlagValue = errors.New("could not set flag value")

package brush

import "errors"

// ErrSplitObserverFailed is returned by StrokeTo when the previous
// stroke's SplitObserver.OnSplit call reported failure. No dabs are
// painted on the call that returns it; the latch is cleared
// immediately after, so the call after that behaves normally.
var ErrSplitObserverFailed = errors.New("brush: split observer failed on previous stroke")

// ErrBadStateTag is returned by Brush.SetState when the payload's
// leading byte is not the ASCII version tag '1'. The call is a no-op:
// the existing state vector is left untouched.
var ErrBadStateTag = errors.New("brush: unrecognized state serialization tag")

package hash

import "fmt"

// errorf wraps sentinel with a formatted message so that errors.Is still
// matches the sentinel.
func errorf(sentinel error, msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(msg, args...))
}

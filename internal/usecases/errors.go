package usecases

import (
	"errors"
	"fmt"
)

// panicError turns a recovered value into an error carrying its text.
func panicError(p any) error {
	switch v := p.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%v", v)
	}
}

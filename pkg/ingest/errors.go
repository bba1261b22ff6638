package ingest

import (
	"errors"
	"fmt"
)

var errInvalidToken = errors.New("invalid api token")

func errVersion(got, required string) error {
	return fmt.Errorf("producer version %q does not satisfy minimum %s", got, required)
}

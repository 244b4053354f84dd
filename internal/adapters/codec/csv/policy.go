package csv

import (
	"fmt"
	"strings"

	"github.com/bnema/layerstats/internal/domain"
)

// Tolerance decides what the decoder does with one class of bad input.
type Tolerance string

const (
	Skip Tolerance = "skip"
	Fail Tolerance = "fail"
)

func ParseTolerance(raw string) (Tolerance, error) {
	switch Tolerance(strings.ToLower(strings.TrimSpace(raw))) {
	case Skip:
		return Skip, nil
	case Fail:
		return Fail, nil
	default:
		return "", fmt.Errorf("unsupported tolerance %q: %w", raw, domain.ErrInvalidConfig)
	}
}

// DecodePolicy separates structural problems (a row the reader cannot split,
// a circle that is not three values) from content problems (a value that is
// not a number).
type DecodePolicy struct {
	MalformedRow    Tolerance
	MalformedCircle Tolerance
	InvalidNumber   Tolerance
}

// LenientPolicy tolerates structural problems and aborts on bad numbers.
func LenientPolicy() DecodePolicy {
	return DecodePolicy{
		MalformedRow:    Skip,
		MalformedCircle: Skip,
		InvalidNumber:   Fail,
	}
}

func StrictPolicy() DecodePolicy {
	return DecodePolicy{
		MalformedRow:    Fail,
		MalformedCircle: Fail,
		InvalidNumber:   Fail,
	}
}

func (p DecodePolicy) Validate() error {
	checks := []struct {
		key   string
		value Tolerance
	}{
		{key: "malformed_row", value: p.MalformedRow},
		{key: "malformed_circle", value: p.MalformedCircle},
		{key: "invalid_number", value: p.InvalidNumber},
	}

	for _, check := range checks {
		if check.value != Skip && check.value != Fail {
			return fmt.Errorf("decode.%s: unsupported tolerance %q: %w", check.key, check.value, domain.ErrInvalidConfig)
		}
	}

	return nil
}

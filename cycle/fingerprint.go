package cycle

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ucarion/jcs"
)

// Fingerprint is the value used for repeat detection. Two equal fingerprints
// must imply identical futures for the states they were taken from.
type Fingerprint string

// Encoder derives the fingerprint of a state observed at step `phase`.
//
// An encoder must fold in everything the transition depends on besides the
// state payload. If the rule cycles through k behaviours keyed on the step
// number, `phase % k` belongs in the fingerprint (see Phased).
//
// Encoders that keep only a derived signal of the state (for instance just
// the visible digits) are cheaper, but two states sharing a signal may still
// diverge later. Such encoders must say so in their documentation.
type Encoder[S any] func(state S, phase uint64) Fingerprint

// Ints builds a compact fingerprint from a tuple of integers.
func Ints(values ...int) Fingerprint {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return Fingerprint(b.String())
}

// Phased prefixes the fingerprint produced by enc with `phase % k`.
func Phased[S any](k uint64, enc Encoder[S]) Encoder[S] {
	if k == 0 {
		k = 1
	}
	return func(state S, phase uint64) Fingerprint {
		p := strconv.FormatUint(phase%k, 10)
		return Fingerprint(p + "|" + string(enc(state, phase)))
	}
}

// Canonical returns the RFC 8785 canonical JSON form of v. Map and field
// ordering never leads to two different fingerprints for equal values.
func Canonical(v any) (Fingerprint, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return "", err
	}

	txt, err := jcs.Format(normalized)
	if err != nil {
		return "", err
	}
	return Fingerprint(txt), nil
}

// MustCanonical is like Canonical but panics if v cannot be encoded. It is
// meant for encoders over plain data records, which can always be encoded.
func MustCanonical(v any) Fingerprint {
	fp, err := Canonical(v)
	if err != nil {
		panic(err)
	}
	return fp
}

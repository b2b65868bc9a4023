package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"orderdesk/internal/pkg/errs"
)

const (
	// UIDLength is the fixed number of characters in every public identifier.
	UIDLength = 13

	// UIDAlphabet lists the characters a UID may contain.
	UIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrUIDIsNotConstructed indicates a zero-value UID.
var ErrUIDIsNotConstructed = errs.NewValueIsRequiredError("UID must be created via NewRandomUID or UIDFromString")

// UID is the public identifier of orders and products: 13 characters from [A-Z0-9].
// It is distinct from the numeric primary key, which never leaves storage and the read models.
//
// The zero value is invalid; use NewRandomUID or UIDFromString.
//
// Example:
//
//	uid, err := kernel.UIDFromString("UID1PRODUCTAA")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(uid) // UID1PRODUCTAA
type UID struct {
	value string
}

// NewRandomUID draws a candidate identifier uniformly from the alphabet, character by character.
// Uniqueness is not checked here; see services.UIDAllocator.
func NewRandomUID() UID {
	var b strings.Builder
	b.Grow(UIDLength)
	for range UIDLength {
		b.WriteByte(UIDAlphabet[rand.IntN(len(UIDAlphabet))])
	}
	return UID{value: b.String()}
}

// UIDFromString parses and validates an identifier. Surrounding whitespace is trimmed.
func UIDFromString(s string) (UID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UID{}, errs.NewValueIsRequiredError("uid")
	}
	if len(s) != UIDLength {
		return UID{}, errs.NewValueIsInvalidErrorWithCause("uid",
			fmt.Errorf("must be exactly %d characters, got %d", UIDLength, len(s)))
	}
	for i := range len(s) {
		if !strings.ContainsRune(UIDAlphabet, rune(s[i])) {
			return UID{}, errs.NewValueIsInvalidErrorWithCause("uid",
				fmt.Errorf("must contain only uppercase letters and digits, got %q", s[i]))
		}
	}
	return UID{value: s}, nil
}

// UIDsFromStrings parses every element, joining all errors.
func UIDsFromStrings(values []string) ([]UID, error) {
	uids := make([]UID, 0, len(values))
	var parseErrs []error
	for _, v := range values {
		uid, err := UIDFromString(v)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		uids = append(uids, uid)
	}
	if len(parseErrs) > 0 {
		return nil, errors.Join(parseErrs...)
	}
	return uids, nil
}

// UIDStrings converts identifiers back to their string form.
func UIDStrings(uids []UID) []string {
	out := make([]string, len(uids))
	for i, uid := range uids {
		out[i] = uid.value
	}
	return out
}

func (u UID) String() string {
	return u.value
}

func (u UID) IsEqual(other UID) bool {
	return u.value == other.value
}

// Validate returns ErrUIDIsNotConstructed for the zero value.
func (u UID) Validate() error {
	if u.value == "" {
		return ErrUIDIsNotConstructed
	}
	return nil
}

package account

import (
	"context"
	"regexp"
	"unicode/utf8"
)

// UsernameReason is the outcome of a username policy check.
type UsernameReason string

const (
	UsernameOK       UsernameReason = "ok"
	UsernameTooLong  UsernameReason = "too_long"
	UsernameTooShort UsernameReason = "too_short"
	UsernameIllegal  UsernameReason = "illegal_characters"
	UsernameReserved UsernameReason = "reserved"
	UsernameOccupied UsernameReason = "occupied"
)

var illegalUsernameChars = regexp.MustCompile(`[^a-zA-Z0-9_.]`)

// ExistsFunc reports whether a username is already taken.
type ExistsFunc func(ctx context.Context, username string) (bool, error)

// UsernameValidator checks candidate usernames against length bounds, the
// character whitelist and the reserved-name list, in that fixed order. The
// occupied check is the only one that touches the repository.
type UsernameValidator struct {
	MinLen   int
	MaxLen   int
	reserved map[string]struct{}
}

func NewUsernameValidator(minLen, maxLen int, reserved []string) *UsernameValidator {
	set := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		set[name] = struct{}{}
	}
	return &UsernameValidator{MinLen: minLen, MaxLen: maxLen, reserved: set}
}

// Validate runs the checks in precedence order and stops at the first
// violation. When checkOccupied is false the exists lookup is never invoked,
// making the rule checks pure. A lookup failure is returned as an error, not
// a reason.
func (v *UsernameValidator) Validate(ctx context.Context, username string, checkOccupied bool, exists ExistsFunc) (UsernameReason, error) {
	n := utf8.RuneCountInString(username)
	if n > v.MaxLen {
		return UsernameTooLong, nil
	}
	if n < v.MinLen {
		return UsernameTooShort, nil
	}
	if illegalUsernameChars.MatchString(username) {
		return UsernameIllegal, nil
	}
	if _, ok := v.reserved[username]; ok {
		return UsernameReserved, nil
	}
	if checkOccupied {
		taken, err := exists(ctx, username)
		if err != nil {
			return "", err
		}
		if taken {
			return UsernameOccupied, nil
		}
	}
	return UsernameOK, nil
}

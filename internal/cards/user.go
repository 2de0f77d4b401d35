package cards

import "errors"

// ErrUsernameInvalidLength reports a nickname outside [3, 20] characters.
var ErrUsernameInvalidLength = errors.New("username must be 3 to 20 characters")

// ErrUsernameInvalidCharacters reports a nickname with characters other than
// alphanumerics and underscore.
var ErrUsernameInvalidCharacters = errors.New("username must be alphanumeric or underscore")

// User is an authenticated nickname. Equality is by nickname; two Users
// with the same Nickname are interchangeable.
type User struct {
	Nickname string
}

// NewUser validates and constructs a User from a raw nickname.
func NewUser(nickname string) (User, error) {
	if len(nickname) < 3 || len(nickname) > 20 {
		return User{}, ErrUsernameInvalidLength
	}
	for _, c := range nickname {
		if !isNicknameChar(c) {
			return User{}, ErrUsernameInvalidCharacters
		}
	}
	return User{Nickname: nickname}, nil
}

func isNicknameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	default:
		return false
	}
}

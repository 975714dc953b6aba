package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	ConfirmationPrefix = "CONF"
	// ConfirmationPoolSize is the number of distinct 4-digit suffixes.
	ConfirmationPoolSize = 10000

	MaxPassengerNameLength = 50
)

var (
	ErrInvalidConfirmationNumber = errors.New("confirmation number must match CONF followed by 4 digits")
	ErrInvalidPassengerName      = errors.New("passenger name must be a first and last name")
	ErrPassengerNameTooLong      = errors.New("passenger name is too long (max 50 characters)")
)

var (
	confirmationPattern = regexp.MustCompile(`^CONF[0-9]{4}$`)
	// first name, space, last name (optionally with an apostrophe or hyphen), optional middle token
	passengerNamePattern = regexp.MustCompile(`^([a-zA-Z]{2,}\s[a-zA-Z]{1,}'?-?[a-zA-Z]{2,}\s?([a-zA-Z]{1,})?)`)
)

type ConfirmationNumber string

func NewConfirmationNumber(s string) (ConfirmationNumber, error) {
	s = strings.TrimSpace(s)
	if !confirmationPattern.MatchString(s) {
		return "", ErrInvalidConfirmationNumber
	}
	return ConfirmationNumber(s), nil
}

// ConfirmationFromSuffix formats a suffix in [0, ConfirmationPoolSize) as CONF####.
func ConfirmationFromSuffix(suffix int) ConfirmationNumber {
	return ConfirmationNumber(fmt.Sprintf("%s%04d", ConfirmationPrefix, suffix))
}

func IsValidConfirmationNumber(s string) bool {
	return confirmationPattern.MatchString(s)
}

func (c ConfirmationNumber) String() string { return string(c) }

type PassengerName string

func NewPassengerName(s string) (PassengerName, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxPassengerNameLength {
		return "", ErrPassengerNameTooLong
	}
	if !passengerNamePattern.MatchString(s) {
		return "", ErrInvalidPassengerName
	}
	return PassengerName(s), nil
}

func IsValidPassengerName(s string) bool {
	_, err := NewPassengerName(s)
	return err == nil
}

func (p PassengerName) String() string { return string(p) }

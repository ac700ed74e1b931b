package ids

import (
	"strings"

	"github.com/google/uuid"
)

// ===============================
// Opaque entity ids
// ===============================

// Ids carry a type prefix plus 12 random hex chars (user_3f9c2a81d04e).
// The prefix makes the entity type recoverable from the id alone.

const suffixLen = 12

const (
	PrefixUser        = "user"
	PrefixBarbershop  = "shop"
	PrefixBarber      = "barber"
	PrefixService     = "service"
	PrefixAppointment = "appt"
	PrefixHistory     = "hist"
	PrefixPushToken   = "token"
)

func New(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:suffixLen]
}

func NewUser() string        { return New(PrefixUser) }
func NewBarbershop() string  { return New(PrefixBarbershop) }
func NewBarber() string      { return New(PrefixBarber) }
func NewService() string     { return New(PrefixService) }
func NewAppointment() string { return New(PrefixAppointment) }
func NewHistory() string     { return New(PrefixHistory) }
func NewPushToken() string   { return New(PrefixPushToken) }

// HasPrefix reports whether id carries the given type prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_")
}

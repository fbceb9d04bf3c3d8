package campussdk

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The backend speaks in localized literals. Inside this package every status
// and role is a closed enumeration; the literals appear only in the tables
// below and are translated in MarshalJSON/UnmarshalJSON.

// Status is the review state of an application or an employee request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var statusLiterals = map[Status]string{
	StatusPending:  "قيد الانتظار",
	StatusApproved: "مقبول",
	StatusRejected: "مرفوض",
}

// RegistrationStatus is the state of a student's activity registration.
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationAttended   RegistrationStatus = "attended"
	RegistrationAbsent     RegistrationStatus = "absent"
	RegistrationCancelled  RegistrationStatus = "cancelled"
)

var registrationLiterals = map[RegistrationStatus]string{
	RegistrationRegistered: "مسجل",
	RegistrationAttended:   "حضر",
	RegistrationAbsent:     "غائب",
	RegistrationCancelled:  "ملغي",
}

// Role decides which views a user may open.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployee Role = "employee"
)

var roleLiterals = map[Role]string{
	RoleStudent:  "student",
	RoleEmployee: "employee",
}

func (s Status) Valid() bool { _, ok := statusLiterals[s]; return ok }

// Literal returns the wire form, or "" for an unknown status.
func (s Status) Literal() string { return statusLiterals[s] }

func (s Status) MarshalJSON() ([]byte, error) { return encodeLiteral(s, statusLiterals, "status") }

func (s *Status) UnmarshalJSON(data []byte) error {
	return decodeLiteral(data, s, statusLiterals, "status")
}

// ParseStatus accepts the internal name ("approved") or the wire literal.
func ParseStatus(v string) (Status, error) { return parseName(v, statusLiterals, "status") }

func (s RegistrationStatus) Valid() bool { _, ok := registrationLiterals[s]; return ok }

func (s RegistrationStatus) Literal() string { return registrationLiterals[s] }

func (s RegistrationStatus) MarshalJSON() ([]byte, error) {
	return encodeLiteral(s, registrationLiterals, "registration status")
}

func (s *RegistrationStatus) UnmarshalJSON(data []byte) error {
	return decodeLiteral(data, s, registrationLiterals, "registration status")
}

func (r Role) Valid() bool { _, ok := roleLiterals[r]; return ok }

func (r Role) MarshalJSON() ([]byte, error) { return encodeLiteral(r, roleLiterals, "role") }

func (r *Role) UnmarshalJSON(data []byte) error { return decodeLiteral(data, r, roleLiterals, "role") }

// ParseRole accepts "student" or "employee".
func ParseRole(v string) (Role, error) { return parseName(v, roleLiterals, "role") }

// encodeLiteral writes the zero value as null so optional fields survive a
// round trip.
func encodeLiteral[T ~string](v T, table map[T]string, what string) ([]byte, error) {
	if v == "" {
		return []byte("null"), nil
	}
	literal, ok := table[v]
	if !ok {
		return nil, fmt.Errorf("unknown %s %q", what, string(v))
	}
	return json.Marshal(literal)
}

func decodeLiteral[T ~string](data []byte, dst *T, table map[T]string, what string) error {
	if bytes.Equal(data, []byte("null")) {
		*dst = ""
		return nil
	}

	var literal string
	if err := json.Unmarshal(data, &literal); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	for v, l := range table {
		if l == literal {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("unknown %s literal %q", what, literal)
}

func parseName[T ~string](v string, table map[T]string, what string) (T, error) {
	for name, literal := range table {
		if string(name) == v || literal == v {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown %s %q", what, v)
}

package entity

// PrincipalKind discriminates the two independent identity spaces.
// A token minted for one kind is never valid for the other: each kind is
// signed with its own secret and resolved against its own repository.
type PrincipalKind string

const (
	// PrincipalBuyer identifies tokens and context values for buyers.
	PrincipalBuyer PrincipalKind = "buyer"

	// PrincipalAdmin identifies tokens and context values for admins.
	PrincipalAdmin PrincipalKind = "admin"
)

// String returns the kind as a plain string for claims and logging.
func (k PrincipalKind) String() string {
	return string(k)
}

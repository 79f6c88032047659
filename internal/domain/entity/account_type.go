// Package entity contains the core business objects of the project.
package entity

// AccountType discriminates the two account variants. Slugs and emails are
// unique within one type's namespace, never across both.
type AccountType string

const (
	// AccountTypeProducer indicates a producer account.
	AccountTypeProducer AccountType = "producer"
	// AccountTypeStore indicates a store account.
	AccountTypeStore AccountType = "store"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeProducer, AccountTypeStore:
		return true
	default:
		return false
	}
}

// AccountStatus represents the lifecycle status of an account. Accounts are
// never hard-deleted; deactivation moves them to inactive.
type AccountStatus string

const (
	// AccountStatusPending indicates an account awaiting activation.
	AccountStatusPending AccountStatus = "pending"
	// AccountStatusActive indicates a fully usable account.
	AccountStatusActive AccountStatus = "active"
	// AccountStatusInactive indicates a soft-deactivated account.
	AccountStatusInactive AccountStatus = "inactive"
	// AccountStatusSuspended indicates an account locked by an operator.
	AccountStatusSuspended AccountStatus = "suspended"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusActive, AccountStatusInactive, AccountStatusSuspended:
		return true
	default:
		return false
	}
}

package domain

import (
	"regexp"
	"strings"
)

// AccountId identifies a party: owners, buyers, the platform, the charity
// and the asset registry itself.
type AccountId string

var accountIdPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

func (a AccountId) String() string {
	return string(a)
}

func (a AccountId) IsEmpty() bool {
	return len(a) == 0
}

func (a AccountId) ToLower() AccountId {
	return AccountId(strings.ToLower(string(a)))
}

func (a AccountId) Equals(b AccountId) bool {
	return a.ToLower() == b.ToLower()
}

// IsValid follows the registry's account naming rules: 2 to 64 chars of
// lower case alphanumerics separated by '-', '_' or '.'.
func (a AccountId) IsValid() bool {
	if len(a) < 2 || len(a) > 64 {
		return false
	}
	return accountIdPattern.MatchString(string(a))
}

// AssetId is the registry's token id.
type AssetId string

func (i AssetId) String() string {
	return string(i)
}

func (i AssetId) IsEmpty() bool {
	return len(i) == 0
}

type PurchaseId string

func (i PurchaseId) String() string {
	return string(i)
}

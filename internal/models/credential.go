package models

// Category classifies a credential. "all" and "favorites" are view filters,
// not stored categories, and are rejected by Valid.
type Category string

const (
	CategoryBanking Category = "banking"
	CategorySocial  Category = "social"
	CategoryWork    Category = "work"
	CategoryOther   Category = "other"
)

// Categories lists the stored categories in display order.
var Categories = []Category{CategoryBanking, CategorySocial, CategoryWork, CategoryOther}

func (c Category) Valid() bool {
	switch c {
	case CategoryBanking, CategorySocial, CategoryWork, CategoryOther:
		return true
	}
	return false
}

// Credential is a single vault record. Password is stored in plaintext; the
// store offers no protection against local tampering.
type Credential struct {
	ID          int64    `json:"id"`
	Website     string   `json:"website"`
	AccountName string   `json:"accountName"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Category    Category `json:"category"`
	Notes       string   `json:"notes"`
	Favorite    bool     `json:"favorite"`
	Icon        string   `json:"icon"`
}

// CredentialFields carries the mutable fields submitted on create and edit.
// ID, Favorite and Icon are managed by the store.
type CredentialFields struct {
	Website     string
	AccountName string
	Username    string
	Password    string
	Category    Category
	Notes       string
}

package entity

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// Account is the durable account record as persisted in the users
// collection. PublicID is disclosed only to the owner; SecureID is safe to
// expose and keys the stored profile image. Salt and PasswordHash are set
// together at creation and never mutated independently.
type Account struct {
	PublicID     string    `bson:"uid"`
	SecureID     string    `bson:"suid"`
	Email        string    `bson:"email"`
	Username     string    `bson:"username"`
	DisplayName  string    `bson:"displayname"`
	PasswordHash string    `bson:"password"`
	Salt         string    `bson:"salt"`
	JoinedAt     time.Time `bson:"joined_at"`
	Joined       string    `bson:"joined"` // human-readable rendering
	Role         Role      `bson:"role"`
}

// SafeView is the projection of an Account that may be shown to parties
// other than the owner: no ids beyond the secure id, no credential material.
type SafeView struct {
	SecureID    string `json:"suid"`
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
	Joined      string `json:"joined"`
	Role        Role   `json:"role"`
	Profile     string `json:"profile"`
}

// Safe derives the SafeView for a. serverURL prefixes the computed
// profile-image URL.
func (a *Account) Safe(serverURL string) SafeView {
	return SafeView{
		SecureID:    a.SecureID,
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Joined:      a.Joined,
		Role:        a.Role,
		Profile:     serverURL + "/api/profile-data/image/" + a.SecureID,
	}
}

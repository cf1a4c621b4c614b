package entities

// UserRole gates the administrative surface. ADMIN users have no center;
// BENEVOLE (volunteer) users act within exactly one.
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleBenevole UserRole = "BENEVOLE"
)

// User is the authenticated actor identity. The core never authenticates
// beyond the login step; everything downstream consumes (id, role, centerId).
type User struct {
	ID           UserID
	Username     string
	PasswordHash string
	Role         UserRole
	CenterID     CenterID // empty for ADMIN
}

func NewUser(username, passwordHash string, role UserRole, centerID CenterID) User {
	return User{
		ID:           NewUserID(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CenterID:     centerID,
	}
}

// EnsureCanLogin rejects volunteers that are not attached to a center: they
// would have no store to record for.
func (u *User) EnsureCanLogin() error {
	if u.Role == UserRoleBenevole && u.CenterID == "" {
		return ErrNoActiveCenter
	}
	return nil
}

package models

// RoleID is the closed set of roles a user can hold.
type RoleID uint

const (
	RoleAdmin   RoleID = 1
	RoleManager RoleID = 2
	RoleCashier RoleID = 3
)

// Valid reports whether r is one of the three known roles.
func (r RoleID) Valid() bool {
	return r >= RoleAdmin && r <= RoleCashier
}

// Role is a row of the roles reference table.
type Role struct {
	ID   RoleID `gorm:"column:id_role;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:nama_role;size:50;not null" json:"name"`
}

func (Role) TableName() string { return "roles" }

// Address is the address reference a user points to. A default row with id 1
// is seeded and used for every user created from the console.
type Address struct {
	ID      uint   `gorm:"column:id_alamat;primaryKey" json:"id"`
	Address string `gorm:"column:alamat;size:255" json:"address"`
}

func (Address) TableName() string { return "alamat" }

// DefaultAddressID is the seeded address row.
const DefaultAddressID uint = 1

// User is an operator account. Password holds a bcrypt hash.
type User struct {
	ID        uint     `gorm:"column:id_user;primaryKey" json:"id"`
	Username  string   `gorm:"column:username;size:100;uniqueIndex;not null" json:"username"`
	Password  string   `gorm:"column:passwords;size:255;not null" json:"-"`
	Email     string   `gorm:"column:email;size:255" json:"email"`
	AddressID uint     `gorm:"column:id_alamat;not null;default:1" json:"address_id"`
	Address   *Address `gorm:"foreignKey:AddressID;references:ID" json:"address,omitempty"`

	// Role is the single role assignment of the user, nil when unassigned.
	Role *UserRole `gorm:"foreignKey:UserID;references:ID" json:"role,omitempty"`
}

func (User) TableName() string { return "users" }

// RoleName returns the assigned role name, or "" without an assignment.
func (u *User) RoleName() string {
	if u.Role == nil || u.Role.Role == nil {
		return ""
	}
	return u.Role.Role.Name
}

// UserRole assigns a role to a user.
type UserRole struct {
	UserID uint   `gorm:"column:id_user;primaryKey;autoIncrement:false" json:"user_id"`
	RoleID RoleID `gorm:"column:id_role;primaryKey;autoIncrement:false" json:"role_id"`
	Role   *Role  `gorm:"foreignKey:RoleID;references:ID" json:"role,omitempty"`
}

func (UserRole) TableName() string { return "user_role" }

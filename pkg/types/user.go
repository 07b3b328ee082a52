package types

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleLandlord UserRole = "LANDLORD"
	UserRoleTenant   UserRole = "TENANT"
)

type User struct {
	ID              string    `db:"id" json:"id"`
	AppwriteID      *string   `db:"appwrite_id" json:"appwriteId"`
	FirstName       string    `db:"first_name" json:"firstName"`
	LastName        string    `db:"last_name" json:"lastName"`
	Email           string    `db:"email" json:"email"`
	UserRole        string    `db:"user_role" json:"userRole"`
	ApartmentNumber *string   `db:"apartment_number" json:"apartmentNumber"`
	PhoneNumber     *string   `db:"phone_number" json:"phoneNumber"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

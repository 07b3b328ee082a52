package types

import "time"

// Property is a landlord-owned building record. This flow only ever reads
// properties (matched by the landlord's registered email); rows are created
// by the seed command or elsewhere.
type Property struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

package types

import "time"

const LeaseStatusPending = "PENDING"

type Lease struct {
	ID              string    `db:"id" json:"id"`
	FirstName       string    `db:"first_name" json:"firstName"`
	LastName        string    `db:"last_name" json:"lastName"`
	Email           string    `db:"email" json:"email"`
	SecurityDeposit *string   `db:"security_deposit" json:"securityDeposit"`
	ApartmentNumber string    `db:"apartment_number" json:"apartmentNumber"`
	LeaseStart      time.Time `db:"lease_start" json:"leaseStart"`
	LeaseEnd        time.Time `db:"lease_end" json:"leaseEnd"`
	MonthlyRent     string    `db:"monthly_rent" json:"monthlyRent"`
	LeaseStatus     string    `db:"lease_status" json:"leaseStatus"`
	PropertyID      string    `db:"property_id" json:"propertyId"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// LeaseRequest is the body of POST /generate-and-send. SecurityDeposit and
// ApartmentNumber are the only optional fields; the apartment number is
// derived from the address when absent.
type LeaseRequest struct {
	LandlordName    string `json:"landlordName"`
	LandlordEmail   string `json:"landlordEmail"`
	TenantName      string `json:"tenantName"`
	TenantEmail     string `json:"tenantEmail"`
	PropertyAddress string `json:"propertyAddress"`
	LeaseStartDate  string `json:"leaseStartDate"`
	LeaseEndDate    string `json:"leaseEndDate"`
	MonthlyRent     string `json:"monthlyRent"`
	SecurityDeposit string `json:"securityDeposit"`
	ApartmentNumber string `json:"apartmentNumber"`
}

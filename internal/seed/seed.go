package seed

import (
	"context"
	"errors"
	"fmt"

	"leasedesk/internal/store"
	"leasedesk/internal/utils"
	"leasedesk/pkg/types"
)

// The pipeline presumes an admin user (notification receiver) and a
// property row keyed by the landlord's email; without them the flow cannot
// succeed against an empty database.

type seedUser struct {
	Email     string
	FirstName string
	LastName  string
	Role      types.UserRole
	Apartment string
}

var seedUsers = []seedUser{
	{Email: "admin@leasedesk.local", FirstName: "Site", LastName: "Admin", Role: types.UserRoleAdmin},
	{Email: "landlord@leasedesk.local", FirstName: "Pat", LastName: "Morgan", Role: types.UserRoleLandlord},
	{Email: "tenant.one@example.com", FirstName: "Ava", LastName: "Williams", Role: types.UserRoleTenant, Apartment: "101"},
	{Email: "tenant.two@example.com", FirstName: "Liam", LastName: "Johnson", Role: types.UserRoleTenant, Apartment: "204"},
}

func SeedUsers(ctx context.Context, userRepo *store.UserRepository) error {
	seeded := 0
	for _, su := range seedUsers {
		_, err := userRepo.UserByEmail(ctx, su.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrUserNotFound) {
			return fmt.Errorf("failed to fetch seed user %s: %w", su.Email, err)
		}

		user := &types.User{
			FirstName: su.FirstName,
			LastName:  su.LastName,
			Email:     su.Email,
			UserRole:  string(su.Role),
		}
		if su.Apartment != "" {
			user.ApartmentNumber = utils.StringPtr(su.Apartment)
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create seed user %s: %w", su.Email, err)
		}
		seeded++
	}

	fmt.Printf("Users seeded: %d created\n", seeded)
	return nil
}

func SeedProperties(ctx context.Context, propertyRepo *store.PropertyRepository) error {
	const landlordEmail = "landlord@leasedesk.local"

	_, err := propertyRepo.PropertyByEmail(ctx, landlordEmail)
	if err == nil {
		fmt.Println("Properties seeded: 0 created")
		return nil
	}
	if !errors.Is(err, types.ErrPropertyNotFound) {
		return fmt.Errorf("failed to fetch seed property: %w", err)
	}

	property := &types.Property{
		Name:    "Maple Court",
		Address: "742 Maple Court, Springfield",
		Email:   landlordEmail,
	}
	if err := propertyRepo.Create(ctx, property); err != nil {
		return fmt.Errorf("failed to create seed property: %w", err)
	}

	fmt.Println("Properties seeded: 1 created")
	return nil
}

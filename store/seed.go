package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"realestate-schema/models"
)

// Seed loads the illustrative dataset in a single transaction: either the
// whole dataset lands or none of it does. Running it against a database that
// already holds the dataset fails with ErrDuplicate.
func Seed(ctx context.Context, db *gorm.DB) error {
	return New(db).WithTx(ctx, func(tx *Store) error {
		properties := []models.Property{
			{ID: 1, Title: "Luxury Apartment", ListingNumber: stringPtr("LN12345678901"), ListingDate: datePtr(2024, time.January, 15)},
			{ID: 2, Title: "Cozy Cottage", ListingNumber: stringPtr("LN12345678902"), ListingDate: datePtr(2024, time.February, 3)},
			{ID: 3, Title: "City Office Space", ListingNumber: stringPtr("LN12345678903"), ListingDate: datePtr(2024, time.February, 20)},
		}
		for i := range properties {
			if err := tx.Properties().Create(ctx, &properties[i]); err != nil {
				return err
			}
		}

		agents := []models.Agent{
			{ID: 1, Name: "John Doe", BirthDate: datePtr(1985, time.August, 24)},
			{ID: 2, Name: "Jane Smith", BirthDate: datePtr(1990, time.March, 12)},
		}
		for i := range agents {
			if err := tx.Agents().Create(ctx, &agents[i]); err != nil {
				return err
			}
		}

		clients := []models.Client{
			{ID: 1, Name: "Alice Johnson", Email: stringPtr("alice.johnson@example.com"), RegistrationDate: datePtr(2024, time.January, 10)},
			{ID: 2, Name: "Bob Brown", Email: stringPtr("bob.brown@example.com"), RegistrationDate: datePtr(2024, time.February, 1)},
		}
		for i := range clients {
			if err := tx.Clients().Create(ctx, &clients[i]); err != nil {
				return err
			}
		}

		assignments := [][2]uint{{1, 1}, {2, 1}, {3, 2}}
		for _, a := range assignments {
			if err := tx.Properties().AssignAgent(ctx, a[0], a[1]); err != nil {
				return err
			}
		}

		if err := tx.Transactions().Record(ctx, 1, 1, date(2024, time.April, 1)); err != nil {
			return err
		}
		return tx.Transactions().Record(ctx, 2, 2, date(2024, time.April, 15))
	})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func stringPtr(s string) *string {
	return &s
}

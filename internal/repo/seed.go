// Demo content seeding.
//
// Seed mirrors the launch content of the marketing site so a fresh install
// has something to render. It is intentionally idempotent: once any project
// exists, the seeder refuses to touch the store again.
package repo

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// Seed inserts the demo projects and jobs when the projects collection is
// empty. It reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	existing, err := CountProjects(ctx, db)
	if err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	projects := []domain.Project{
		{
			ID:          "alkapuri",
			Title:       "Advaithaa Alkapuri Residences",
			Description: "Meticulously crafted apartment project designed to elevate modern urban living, epitomizing luxury, comfort, and convenience.",
			Category:    "residential",
			SubCategory: "Apartments",
			Location:    "Alkapuri, Nagole, Hyderabad",
			ImageURL:    "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800",
			Features: datatypes.JSONSlice[string]{
				"55 Premium 3BHK Units", "2,100 sq.ft each flat", "9,000 sqft Clubhouse",
				"Swimming Pool", "24/7 Security",
			},
			Highlights: datatypes.JSONMap{
				"area": "4,726 sq.y.", "floors": "5 floors", "units": "55 units",
			},
			IsFeatured: true,
		},
		{
			ID:          "narsampalle",
			Title:       "Narsampalle Premium Plots",
			Description: "Invest in Growth, Live with Vision. Prime plots with HMDA-approved layouts and strategic connectivity.",
			Category:    "plots",
			SubCategory: "Open Plots",
			Location:    "Narsampalle Village, Keesara Mandal",
			ImageURL:    "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=800",
			Features: datatypes.JSONSlice[string]{
				"HMDA-Approved", "40' Wide Roads", "Underground Infrastructure", "10,000 SFT Clubhouse",
			},
			Highlights: datatypes.JSONMap{
				"approval": "HMDA Approved", "road_width": "40 feet", "plot_range": "180-360 sq.y.",
			},
			IsFeatured: true,
		},
	}

	jobs := []domain.Job{
		{
			ID:          "eng001",
			Title:       "Project Engineer",
			Department:  "Engineering",
			Location:    "Hyderabad",
			Type:        "Full-time",
			Description: "Oversee construction projects and ensure quality delivery.",
			Requirements: datatypes.JSONSlice[string]{
				"B.E/B.Tech in Civil Engineering", "3-5 years experience",
				"Construction management software knowledge",
			},
			IsActive: true,
		},
		{
			ID:          "sales001",
			Title:       "Sales Executive",
			Department:  "Sales",
			Location:    "Hyderabad",
			Type:        "Full-time",
			Description: "Drive property sales and build customer relationships.",
			Requirements: datatypes.JSONSlice[string]{
				"Bachelor's degree", "2+ years real estate sales", "Excellent negotiation skills",
			},
			IsActive: true,
		},
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&projects).Error; err != nil {
			return err
		}
		return tx.Create(&jobs).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

package memory

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Fixture credentials available right after startup.
const (
	SeedAdminUsername   = "admin"
	SeedAdminPassword   = "admin123"
	SeedAthleteUsername = "athlete"
	SeedAthletePassword = "athlete123"
)

func strPtr(s string) *string { return &s }

// populate adds one administrator, one athlete account and the athlete's profile.
func (s *Store) populate() error {
	ctx := context.Background()

	adminHash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}
	athleteHash, err := bcrypt.GenerateFromPassword([]byte(SeedAthletePassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed athlete password: %w", err)
	}

	admin, _ := s.CreateUser(ctx, models.NewUser{
		Username: SeedAdminUsername,
		Email:    "admin@team.com",
		Password: string(adminHash),
		Role:     models.RoleAdmin,
		FullName: "Team Admin",
	})

	player, _ := s.CreateUser(ctx, models.NewUser{
		Username: SeedAthleteUsername,
		Email:    "athlete@team.com",
		Password: string(athleteHash),
		Role:     models.RoleAthlete,
		FullName: "John Player",
		Position: strPtr("Point Guard"),
	})

	profile, _ := s.CreateAthlete(ctx, models.NewAthlete{
		UserID:             player.ID,
		Height:             strPtr("6'2\""),
		Weight:             strPtr("185 lbs"),
		SleepHours:         strPtr("8"),
		OverallPerformance: strPtr("85"),
	})

	logger.Log.Infow("memory store seeded",
		"admin_id", admin.ID,
		"athlete_user_id", player.ID,
		"athlete_id", profile.ID,
	)
	return nil
}

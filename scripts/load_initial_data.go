package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dad-circles-backend/internal/config"
	"dad-circles-backend/internal/database"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/logger"
	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ChildData is one child as written in the seed files
type ChildData struct {
	Name       string  `yaml:"name,omitempty"`
	BirthYear  int     `yaml:"birth_year"`
	BirthMonth *int    `yaml:"birth_month,omitempty"`
	Gender     *string `yaml:"gender,omitempty"`
	Type       *string `yaml:"type,omitempty"`
}

// MemberData mirrors the onboarding payload
type MemberData struct {
	Email     string                 `yaml:"email"`
	FirstName string                 `yaml:"first_name"`
	LastName  string                 `yaml:"last_name,omitempty"`
	Postcode  string                 `yaml:"postcode,omitempty"`
	City      string                 `yaml:"city"`
	State     string                 `yaml:"state"`
	Eligible  *bool                  `yaml:"eligible,omitempty"`
	Children  []ChildData            `yaml:"children"`
	Metadata  map[string]interface{} `yaml:"metadata,omitempty"`
}

// MembersFile is the top-level shape of a members*.yaml file
type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding members*.yaml files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel, os.Stdout)
	logrus.Info("Loading members from YAML files...")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	members, err := loadMembers(*dataDir)
	if err != nil {
		logrus.Fatalf("Failed to read member files: %v", err)
	}

	created, skipped, err := seedMembers(service.NewMemberService(repository.NewMemberRepository(db), validator.New()), members)
	if err != nil {
		logrus.Fatalf("Failed to seed members: %v", err)
	}

	logrus.WithFields(logrus.Fields{"created": created, "skipped": skipped}).Info("Members loaded")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var allMembers []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allMembers = append(allMembers, file.Members...)
		}
		return nil
	})

	return allMembers, err
}

// seedMembers creates each member, skipping emails that already exist
func seedMembers(members service.MemberServiceInterface, data []MemberData) (created, skipped int, err error) {
	for _, m := range data {
		req, err := toCreateRequest(m)
		if err != nil {
			return created, skipped, err
		}

		if _, err := members.CreateMember(req); err != nil {
			if apperrors.IsAlreadyExists(err) {
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("member %s: %w", m.Email, err)
		}
		created++
	}
	return created, skipped, nil
}

func toCreateRequest(m MemberData) (*service.CreateMemberRequest, error) {
	req := &service.CreateMemberRequest{
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Postcode:  m.Postcode,
		City:      m.City,
		State:     m.State,
		Eligible:  m.Eligible,
	}
	for _, c := range m.Children {
		req.Children = append(req.Children, service.ChildRequest{
			Name:       c.Name,
			BirthYear:  c.BirthYear,
			BirthMonth: c.BirthMonth,
			Gender:     c.Gender,
			Type:       c.Type,
		})
	}
	if len(m.Metadata) > 0 {
		raw, err := json.Marshal(m.Metadata)
		if err != nil {
			return nil, fmt.Errorf("member %s metadata: %w", m.Email, err)
		}
		req.Metadata = raw
	}
	return req, nil
}

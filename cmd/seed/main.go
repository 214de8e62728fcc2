// Package main seeds an estate (organizations, buildings, locations) into
// Hasura from a YAML file.
//
// Seeding is idempotent by name: an organization, building or location
// that already exists under the same parent is left untouched.
//
//	seed -file seed.yaml
//	seed -hash-password 's3cret'   # prints a bcrypt hash for security.operators
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
	"ppmdesk.io/ppmdesk/internal/app/modules"
	"ppmdesk.io/ppmdesk/internal/config"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/provider"
	"ppmdesk.io/ppmdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "seed.yaml", "YAML estate to seed")
	configPath := flag.String("config", "", "config file (default: search ., ./config, /etc/ppmdesk)")
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash of this password and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := handlers.HashPassword(*hashPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fmt.Println(hash)
		return nil
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	seed, err := parseSeed(raw)
	if err != nil {
		return err
	}

	client, err := modules.NewHasuraClient(cfg, nil)
	if err != nil {
		return err
	}
	estate := service.NewEstateService(provider.NewHasuraProvider(client))

	logger.Info("Starting estate seeding...", zap.String("file", *file))
	sum, err := seedEstate(context.Background(), estate, seed)
	if err != nil {
		return err
	}
	logger.Info("Estate seeding completed successfully",
		zap.Int("organizations_created", sum.Organizations),
		zap.Int("buildings_created", sum.Buildings),
		zap.Int("locations_created", sum.Locations),
		zap.Int("skipped", sum.Skipped),
	)
	return nil
}

// SeedFile is the YAML document.
type SeedFile struct {
	Organizations []SeedOrganization `yaml:"organizations"`
}

// SeedOrganization is one organization and its buildings.
type SeedOrganization struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	Description string         `yaml:"description"`
	Address     string         `yaml:"address"`
	Contact     string         `yaml:"contact"`
	Email       string         `yaml:"email"`
	Phone       string         `yaml:"phone"`
	Buildings   []SeedBuilding `yaml:"buildings"`
}

// SeedBuilding is one building and its locations.
type SeedBuilding struct {
	Name      string         `yaml:"name"`
	Address   string         `yaml:"address"`
	Contact   string         `yaml:"contact"`
	Email     string         `yaml:"email"`
	Phone     string         `yaml:"phone"`
	Floors    int            `yaml:"floors"`
	Locations []SeedLocation `yaml:"locations"`
}

// SeedLocation is one location.
type SeedLocation struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// summary counts what a run created.
type summary struct {
	Organizations int
	Buildings     int
	Locations     int
	Skipped       int
}

func parseSeed(raw []byte) (SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("parse seed file: %w", err)
	}
	if len(seed.Organizations) == 0 {
		return SeedFile{}, fmt.Errorf("seed file has no organizations")
	}
	return seed, nil
}

// seedEstate creates every missing organization, building and location.
// Creation goes through EstateService so seed data is validated like
// console input.
func seedEstate(ctx context.Context, estate *service.EstateService, seed SeedFile) (summary, error) {
	var sum summary

	orgs, err := estate.Organizations(ctx)
	if err != nil {
		return sum, fmt.Errorf("list organizations: %w", err)
	}
	orgIDs := make(map[string]int, len(orgs))
	for _, o := range orgs {
		orgIDs[o.Name] = o.ID
	}

	for _, so := range seed.Organizations {
		orgID, ok := orgIDs[so.Name]
		if ok {
			sum.Skipped++
		} else {
			org, err := estate.CreateOrganization(ctx, service.OrganizationInput{
				Name:        so.Name,
				Type:        so.Type,
				Description: so.Description,
				Address:     so.Address,
				Contact:     so.Contact,
				Email:       so.Email,
				Phone:       so.Phone,
			})
			if err != nil {
				return sum, fmt.Errorf("create organization %q: %w", so.Name, err)
			}
			orgID = org.ID
			orgIDs[so.Name] = orgID
			sum.Organizations++
		}

		if err := seedBuildings(ctx, estate, orgID, so.Buildings, &sum); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func seedBuildings(ctx context.Context, estate *service.EstateService, orgID int, buildings []SeedBuilding, sum *summary) error {
	existing, err := estate.BuildingsByOrg(ctx, orgID)
	if err != nil {
		return fmt.Errorf("list buildings of organization %d: %w", orgID, err)
	}
	bldIDs := make(map[string]int, len(existing))
	for _, b := range existing {
		bldIDs[b.Name] = b.ID
	}

	for _, sb := range buildings {
		bldID, ok := bldIDs[sb.Name]
		if ok {
			sum.Skipped++
		} else {
			bld, err := estate.CreateBuilding(ctx, orgID, service.BuildingInput{
				Name:    sb.Name,
				Address: sb.Address,
				Contact: sb.Contact,
				Email:   sb.Email,
				Phone:   sb.Phone,
				Floors:  sb.Floors,
			})
			if err != nil {
				return fmt.Errorf("create building %q: %w", sb.Name, err)
			}
			bldID = bld.ID
			bldIDs[sb.Name] = bldID
			sum.Buildings++
		}

		locs, err := estate.LocationsByBuilding(ctx, bldID)
		if err != nil {
			return fmt.Errorf("list locations of building %d: %w", bldID, err)
		}
		locNames := make(map[string]bool, len(locs))
		for _, l := range locs {
			locNames[l.Name] = true
		}
		for _, sl := range sb.Locations {
			if locNames[sl.Name] {
				sum.Skipped++
				continue
			}
			if _, err := estate.CreateLocation(ctx, bldID, service.LocationInput{
				Name:        sl.Name,
				Description: sl.Description,
			}); err != nil {
				return fmt.Errorf("create location %q: %w", sl.Name, err)
			}
			locNames[sl.Name] = true
			sum.Locations++
		}
	}
	return nil
}

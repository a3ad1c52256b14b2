// Package main provides a tool to seed the database with demo gallery data.
//
// It creates a handful of artists with small catalogs, sprinkles likes
// from fake viewers, and prints a bearer token per artist user so the
// write endpoints can be exercised by hand.
//
// Usage:
//
//	DATA_PATH=~/InkMatch/data go run ./cmd/seed
//	DATA_PATH=~/InkMatch/data go run ./cmd/seed --likes  # Also seed viewer likes
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/inkmatch/inkmatch-server/internal/auth"
	"github.com/inkmatch/inkmatch-server/internal/domain"
	"github.com/inkmatch/inkmatch-server/internal/id"
	"github.com/inkmatch/inkmatch-server/internal/store"
	"github.com/inkmatch/inkmatch-server/internal/viewer"
)

var seedLikes = flag.Bool("likes", false, "Seed likes from fake viewers")

type seedArtist struct {
	userID   string
	name     string
	location string
	style    string
	prices   []float64
}

var artists = []seedArtist{
	{
		userID:   "user-iris",
		name:     "Iris Nakamura",
		location: "Oslo",
		style:    "fine-line",
		prices:   []float64{220, 340, 510},
	},
	{
		userID:   "user-marco",
		name:     "Marco Reyes",
		location: "Barcelona",
		style:    "blackwork",
		prices:   []float64{400, 650, 900, 1200},
	},
	{
		userID:   "user-lena",
		name:     "Lena Voss",
		location: "Berlin",
		style:    "traditional",
		prices:   []float64{180, 260},
	},
}

var bodyParts = []string{"forearm", "upper-arm", "chest", "calf", "shoulder"}

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/InkMatch/data")
	}

	fmt.Printf("Opening database at: %s\n", filepath.Join(dataPath, "db"))

	s, err := store.New(filepath.Join(dataPath, "db"), nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	key, err := auth.LoadOrGenerateKey(dataPath)
	if err != nil {
		log.Fatalf("Failed to load auth key: %v", err)
	}

	tokens, err := auth.NewTokenService(key, 30*24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	ctx := context.Background()

	var tattooIDs []string
	for _, sa := range artists {
		artist, err := ensureArtist(ctx, s, sa)
		if err != nil {
			log.Fatalf("Failed to seed artist %s: %v", sa.name, err)
		}

		for i, price := range sa.prices {
			tattoo := &domain.Tattoo{
				ID:          id.MustGenerate(id.PrefixTattoo),
				ArtistID:    artist.ID,
				ImageURL:    fmt.Sprintf("https://cdn.inkmatch.example/%s/%d.jpg", artist.ID, i+1),
				Description: fmt.Sprintf("%s piece no. %d by %s", sa.style, i+1, sa.name),
				Price:       price,
				Style:       sa.style,
				BodyPart:    bodyParts[rand.Intn(len(bodyParts))],
			}
			tattoo.InitTimestamps()

			if err := s.CreateTattoo(ctx, tattoo); err != nil {
				log.Fatalf("Failed to seed tattoo for %s: %v", sa.name, err)
			}
			tattooIDs = append(tattooIDs, tattoo.ID)
		}

		token, err := tokens.Mint(sa.userID)
		if err != nil {
			log.Fatalf("Failed to mint token for %s: %v", sa.userID, err)
		}

		fmt.Printf("\nArtist: %s (%s)\n", sa.name, artist.ID)
		fmt.Printf("  Tattoos: %d\n", len(sa.prices))
		fmt.Printf("  Bearer token: %s\n", token)
	}

	if *seedLikes {
		seedViewerLikes(ctx, s, tattooIDs)
	}

	fmt.Println("\nDone.")
}

// ensureArtist creates the artist profile unless the user already has one.
func ensureArtist(ctx context.Context, s *store.Store, sa seedArtist) (*domain.Artist, error) {
	existing, err := s.GetArtistByUserID(ctx, sa.userID)
	if err == nil {
		fmt.Printf("Artist %s already exists, reusing\n", sa.name)
		return existing, nil
	}

	artist := &domain.Artist{
		ID:       id.MustGenerate(id.PrefixArtist),
		Name:     sa.name,
		Location: sa.location,
		Bio:      fmt.Sprintf("%s artist based in %s.", sa.style, sa.location),
		UserID:   sa.userID,
	}
	artist.InitTimestamps()

	if err := s.CreateArtist(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// seedViewerLikes sprinkles likes from a few fake viewers so the
// recommendation rankings have something to chew on.
func seedViewerLikes(ctx context.Context, s *store.Store, tattooIDs []string) {
	for v := 0; v < 5; v++ {
		viewerID := viewer.NewID()

		var likes domain.LikeSet
		for _, tattooID := range tattooIDs {
			if rand.Intn(3) == 0 {
				likes = likes.With(tattooID)
			}
		}

		if len(likes) == 0 {
			continue
		}

		if err := s.SetLikes(ctx, viewerID, likes); err != nil {
			log.Fatalf("Failed to seed likes for %s: %v", viewerID, err)
		}
		fmt.Printf("Viewer %s likes %d tattoos\n", viewerID, len(likes))
	}
}

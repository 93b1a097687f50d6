// Package seed loads the sample catalog and inserts whatever is missing.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pageza/ecocart/backend/config"
	"github.com/pageza/ecocart/backend/internal/models"
)

//go:embed data/sample_data.json
var sampleData []byte

// Fixture is the on-disk seed format.
type Fixture struct {
	Products []ProductFixture `json:"products"`
	Recipes  []RecipeFixture  `json:"recipes"`
}

type ProductFixture struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Barcode     string           `json:"barcode"`
	ImageURL    string           `json:"image_url"`
	Category    string           `json:"category"`
	Features    []FeatureFixture `json:"features"`
}

type FeatureFixture struct {
	Name            string  `json:"name"`
	Value           string  `json:"value"`
	Unit            string  `json:"unit"`
	Category        string  `json:"category"`
	ImportanceScore float64 `json:"importance_score"`
}

type RecipeFixture struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	CookingTime string   `json:"cooking_time"`
	Difficulty  string   `json:"difficulty"`
	ImageURL    string   `json:"image_url"`
}

// ObjectFetcher downloads an object from a bucket-scoped store.
type ObjectFetcher interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// FetcherFactory opens an ObjectFetcher for bucket.
type FetcherFactory func(ctx context.Context, bucket string) (ObjectFetcher, error)

// S3Fetcher returns a FetcherFactory backed by the AWS default credential chain.
func S3Fetcher(region string) FetcherFactory {
	return func(ctx context.Context, bucket string) (ObjectFetcher, error) {
		store, err := config.NewS3Config(ctx, region, bucket)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// Default returns the fixture compiled into the binary.
func Default() (*Fixture, error) {
	return Parse(sampleData)
}

// Load reads a fixture from source: empty for the embedded sample data,
// s3://bucket/key for S3, anything else is a local path.
func Load(ctx context.Context, source string, fetch FetcherFactory) (*Fixture, error) {
	switch {
	case source == "":
		return Default()
	case strings.HasPrefix(source, "s3://"):
		bucket, key, err := ParseS3URI(source)
		if err != nil {
			return nil, err
		}
		if fetch == nil {
			return nil, errors.New("no object store configured for s3 sources")
		}
		store, err := fetch(ctx, bucket)
		if err != nil {
			return nil, err
		}
		data, err := store.GetObject(ctx, key)
		if err != nil {
			return nil, err
		}
		return Parse(data)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		return Parse(data)
	}
}

// ParseS3URI splits s3://bucket/key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri %q must name a bucket and a key", uri)
	}
	return bucket, key, nil
}

// Parse decodes and validates a fixture.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	for i, p := range f.Products {
		if p.Name == "" || p.Barcode == "" {
			return nil, fmt.Errorf("product %d: name and barcode are required", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q: price must not be negative", p.Name)
		}
		for _, feat := range p.Features {
			if feat.Name == "" || feat.Value == "" {
				return nil, fmt.Errorf("product %q: feature name and value are required", p.Name)
			}
		}
	}
	for i, r := range f.Recipes {
		if r.Name == "" {
			return nil, fmt.Errorf("recipe %d: name is required", i)
		}
	}
	return &f, nil
}

func (p ProductFixture) model() models.Product {
	product := models.Product{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Barcode:     p.Barcode,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
	for _, f := range p.Features {
		score := f.ImportanceScore
		if score <= 0 {
			score = 1
		}
		product.Features = append(product.Features, models.ProductFeature{
			FeatureName:     f.Name,
			FeatureValue:    f.Value,
			FeatureUnit:     f.Unit,
			FeatureCategory: f.Category,
			ImportanceScore: score,
		})
	}
	return product
}

func (r RecipeFixture) model() models.Recipe {
	return models.Recipe{
		Name:        r.Name,
		Description: r.Description,
		Ingredients: models.StringList(r.Ingredients),
		CookingTime: r.CookingTime,
		Difficulty:  r.Difficulty,
		ImageURL:    r.ImageURL,
	}
}

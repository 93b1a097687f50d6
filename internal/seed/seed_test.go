package seed_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/ecocart/backend/internal/logging"
	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/seed"
	"github.com/pageza/ecocart/backend/internal/testhelpers"
)

const tinyFixture = `{
  "products": [
    {"name": "Bamboo Toothbrush", "description": "Compostable handle", "price": 4.5, "barcode": "111",
     "image_url": "https://example.com/b.jpg", "category": "Personal Care",
     "features": [{"name": "Biodegradable", "value": "Yes", "unit": "Boolean", "category": "Environmental", "importance_score": 1.2}]}
  ],
  "recipes": [
    {"name": "Toast", "description": "Bread, toasted", "ingredients": ["bread"], "cooking_time": "5 mins", "difficulty": "Easy", "image_url": ""}
  ]
}`

type fakeStore struct {
	objects map[string][]byte
}

func (f *fakeStore) GetObject(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func TestDefaultFixture(t *testing.T) {
	f, err := seed.Default()
	require.NoError(t, err)

	assert.Len(t, f.Products, 92)
	assert.Len(t, f.Recipes, 3)
	assert.Equal(t, "Organic Cotton T-Shirt", f.Products[0].Name)
	assert.Equal(t, "Vegetable Pasta", f.Recipes[0].Name)

	barcodes := make(map[string]bool)
	for _, p := range f.Products {
		assert.False(t, barcodes[p.Barcode], "duplicate barcode %s", p.Barcode)
		barcodes[p.Barcode] = true
		assert.GreaterOrEqual(t, len(p.Features), 5, p.Name)
	}
}

func TestParseRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"missing barcode", `{"products":[{"name":"x","price":1}]}`},
		{"negative price", `{"products":[{"name":"x","barcode":"1","price":-1}]}`},
		{"empty feature", `{"products":[{"name":"x","barcode":"1","price":1,"features":[{"name":"","value":"v"}]}]}`},
		{"unnamed recipe", `{"recipes":[{"name":""}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := seed.ParseS3URI("s3://ecocart-seed/catalog/sample.json")
	require.NoError(t, err)
	assert.Equal(t, "ecocart-seed", bucket)
	assert.Equal(t, "catalog/sample.json", key)

	for _, uri := range []string{"s3://", "s3://bucket", "s3://bucket/", "https://bucket/key"} {
		_, _, err := seed.ParseS3URI(uri)
		assert.Error(t, err, uri)
	}
}

func TestLoadSources(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded", func(t *testing.T) {
		f, err := seed.Load(ctx, "", nil)
		require.NoError(t, err)
		assert.Len(t, f.Products, 92)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(tinyFixture), 0o600))

		f, err := seed.Load(ctx, path, nil)
		require.NoError(t, err)
		require.Len(t, f.Products, 1)
		assert.Equal(t, "Bamboo Toothbrush", f.Products[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := seed.Load(ctx, filepath.Join(t.TempDir(), "absent.json"), nil)
		assert.Error(t, err)
	})

	t.Run("s3", func(t *testing.T) {
		var gotBucket string
		factory := func(_ context.Context, bucket string) (seed.ObjectFetcher, error) {
			gotBucket = bucket
			return &fakeStore{objects: map[string][]byte{"seed/tiny.json": []byte(tinyFixture)}}, nil
		}

		f, err := seed.Load(ctx, "s3://fixtures/seed/tiny.json", factory)
		require.NoError(t, err)
		assert.Equal(t, "fixtures", gotBucket)
		assert.Len(t, f.Recipes, 1)

		_, err = seed.Load(ctx, "s3://fixtures/seed/other.json", factory)
		assert.Error(t, err)
	})

	t.Run("s3 without store", func(t *testing.T) {
		_, err := seed.Load(ctx, "s3://fixtures/seed/tiny.json", nil)
		assert.Error(t, err)
	})
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	log := logging.Discard().WithField("component", "seed")
	ctx := context.Background()

	f, err := seed.Default()
	require.NoError(t, err)

	first, err := seed.Apply(ctx, db, f, log)
	require.NoError(t, err)
	assert.Equal(t, 92, first.ProductsAdded)
	assert.Equal(t, 3, first.RecipesAdded)

	second, err := seed.Apply(ctx, db, f, log)
	require.NoError(t, err)
	assert.Zero(t, second.ProductsAdded)
	assert.Zero(t, second.RecipesAdded)
	assert.Equal(t, 92, second.ProductsSkipped)
	assert.Equal(t, 3, second.RecipesSkipped)

	var products, recipes int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	assert.EqualValues(t, 92, products)
	assert.EqualValues(t, 3, recipes)

	var shirt models.Product
	require.NoError(t, db.Preload("Features").Where("barcode = ?", "1234567890").First(&shirt).Error)
	assert.Equal(t, "Organic Cotton T-Shirt", shirt.Name)
	assert.NotEmpty(t, shirt.Features)

	var pasta models.Recipe
	require.NoError(t, db.Where("name = ?", "Vegetable Pasta").First(&pasta).Error)
	assert.Contains(t, []string(pasta.Ingredients), "tomatoes")
}

func TestApplyFillsGaps(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	testhelpers.CreateProduct(t, db, testhelpers.TShirt())

	f, err := seed.Default()
	require.NoError(t, err)

	res, err := seed.Apply(context.Background(), db, f, logging.Discard().WithField("component", "seed"))
	require.NoError(t, err)
	assert.Equal(t, 91, res.ProductsAdded)
	assert.Equal(t, 1, res.ProductsSkipped)
}

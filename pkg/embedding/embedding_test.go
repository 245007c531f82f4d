package embedding_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/embedding/embeddingtest"
	"shop-assistant/pkg/voyage"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float32
		want    float64
		wantErr bool
	}{
		{name: "Identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "Orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "Opposite", a: []float32{1, 1}, b: []float32{-1, -1}, want: -1},
		{name: "Scale Invariant", a: []float32{1, 0}, b: []float32{5, 0}, want: 1},
		{name: "Zero Vector", a: []float32{0, 0}, b: []float32{1, 0}, want: 0},
		{name: "Dimension Mismatch", a: []float32{1}, b: []float32{1, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := embedding.CosineSimilarity(tt.a, tt.b)
			if tt.wantErr {
				if !errors.Is(err, embedding.ErrDimensionMismatch) {
					t.Fatalf("expected ErrDimensionMismatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCachedProvider(t *testing.T) {
	fake := &embeddingtest.Provider{
		Vectors: map[string][]float32{
			"refund": {1, 0},
			"track":  {0, 1},
		},
	}
	cached := embedding.NewCached(fake, 10, time.Minute)
	ctx := context.Background()

	t.Run("Query Mode Is Cached", func(t *testing.T) {
		if _, err := cached.Embed(ctx, []string{"refund"}, embedding.ModeQuery); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, err := cached.Embed(ctx, []string{"refund"}, embedding.ModeQuery)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v[0][0] != 1 {
			t.Errorf("unexpected vector %v", v[0])
		}
		if n := fake.CallsWithMode(embedding.ModeQuery); n != 1 {
			t.Errorf("expected 1 upstream query call, got %d", n)
		}
	})

	t.Run("Partial Miss Keeps Order", func(t *testing.T) {
		v, err := cached.Embed(ctx, []string{"track", "refund"}, embedding.ModeQuery)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v[0][1] != 1 || v[1][0] != 1 {
			t.Errorf("vectors out of order: %v", v)
		}
		last := fake.Calls()[len(fake.Calls())-1]
		if len(last.Texts) != 1 || last.Texts[0] != "track" {
			t.Errorf("expected only the miss to reach upstream, got %v", last.Texts)
		}
	})

	t.Run("Document Mode Bypasses Cache", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if _, err := cached.Embed(ctx, []string{"refund"}, embedding.ModeDocument); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if n := fake.CallsWithMode(embedding.ModeDocument); n != 2 {
			t.Errorf("expected 2 document calls, got %d", n)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		if p := embedding.NewCached(fake, 0, time.Minute); p != embedding.Provider(fake) {
			t.Error("expected the wrapped provider back when size is 0")
		}
	})
}

type stubVoyage struct {
	lastType voyage.InputType
	err      error
}

func (s *stubVoyage) Embed(ctx context.Context, texts []string, inputType voyage.InputType) ([][]float32, error) {
	s.lastType = inputType
	if s.err != nil {
		return nil, s.err
	}
	return make([][]float32, len(texts)), nil
}

func (s *stubVoyage) Model() string { return "voyage-test" }

func TestVoyageAdapterModes(t *testing.T) {
	stub := &stubVoyage{}
	a := embedding.NewVoyageAdapter(stub)

	a.Embed(context.Background(), []string{"x"}, embedding.ModeQuery)
	if stub.lastType != voyage.InputTypeQuery {
		t.Errorf("query mode mapped to %q", stub.lastType)
	}
	a.Embed(context.Background(), []string{"x"}, embedding.ModeDocument)
	if stub.lastType != voyage.InputTypeDocument {
		t.Errorf("document mode mapped to %q", stub.lastType)
	}
	if _, err := a.Embed(context.Background(), nil, embedding.ModeQuery); !errors.Is(err, embedding.ErrNoTexts) {
		t.Errorf("expected ErrNoTexts, got %v", err)
	}
	if a.Name() != "voyage" || a.Model() != "voyage-test" {
		t.Errorf("unexpected name/model %s/%s", a.Name(), a.Model())
	}
}

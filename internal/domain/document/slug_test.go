package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Consumer Rights Policy", "consumer-rights-policy"},
		{"  Medication   Management  ", "medication-management"},
		{"Infection Control (2024)", "infection-control-2024"},
		{"Résumé Précis", "resume-precis"},
		{"A&B / C?", "ab-c"},
		{"UPPER case", "upper-case"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), tt.title)
	}
}

type fakeSlugChecker struct {
	taken map[string]bool
}

func (f *fakeSlugChecker) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return f.taken[slug], nil
}

func TestUniqueSlug_NoCollision(t *testing.T) {
	checker := &fakeSlugChecker{taken: map[string]bool{}}

	slug, err := UniqueSlug(context.Background(), checker, "Consumer Rights Policy", 0)
	require.NoError(t, err)
	assert.Equal(t, "consumer-rights-policy", slug)
}

func TestUniqueSlug_SequentialProbing(t *testing.T) {
	checker := &fakeSlugChecker{taken: map[string]bool{
		"consumer-rights-policy":   true,
		"consumer-rights-policy-1": true,
	}}

	slug, err := UniqueSlug(context.Background(), checker, "Consumer Rights Policy", 0)
	require.NoError(t, err)
	assert.Equal(t, "consumer-rights-policy-2", slug)
}

func TestUniqueSlug_Idempotent(t *testing.T) {
	checker := &fakeSlugChecker{taken: map[string]bool{}}

	first, err := UniqueSlug(context.Background(), checker, "Consumer Rights Policy", 0)
	require.NoError(t, err)

	// Probing again with the already-unique result yields the same value.
	second, err := UniqueSlug(context.Background(), checker, first, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUniqueSlug_EmptyTitleFallsBack(t *testing.T) {
	checker := &fakeSlugChecker{taken: map[string]bool{}}

	slug, err := UniqueSlug(context.Background(), checker, "???", 0)
	require.NoError(t, err)
	assert.Equal(t, "document", slug)
}

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "1", c.Template.ID)
	assert.Equal(t, "One-Pan Chicken & Vegetables", c.Template.Name)
	assert.Equal(t, 8.5, c.Template.Cost)
	assert.Equal(t, 35, c.Template.TotalTime)
	assert.Equal(t, 420, c.Template.Calories)
	assert.Equal(t, 35, c.Template.Protein)
	assert.Equal(t, []string{"healthy", "quick", "one-pan"}, c.Template.Tags)
	assert.Len(t, c.Names, 10)
	assert.Equal(t, "Lemon Herb Salmon Bowl", c.Names[0])
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "One-Pan Chicken & Vegetables", c.Template.Name)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`
template:
  id: "featured"
  name: Veggie Chili
  cost: 6.25
  difficulty: Medium
  totalTime: 50
  calories: 380
  protein: 18
  tags: [vegan]
names: [Tofu Scramble]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "featured", c.Template.ID)
	assert.Equal(t, 50, c.Template.TotalTime)
	assert.Equal(t, []string{"Tofu Scramble"}, c.Names)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantField string
	}{
		{
			name:      "missing id",
			yaml:      "template: {name: X, totalTime: 10, difficulty: Easy}",
			wantField: "template.id",
		},
		{
			name:      "missing name",
			yaml:      "template: {id: '1', totalTime: 10, difficulty: Easy}",
			wantField: "template.name",
		},
		{
			name:      "zero total time",
			yaml:      "template: {id: '1', name: X, difficulty: Easy}",
			wantField: "template.totalTime",
		},
		{
			name:      "negative cost",
			yaml:      "template: {id: '1', name: X, totalTime: 10, cost: -1, difficulty: Easy}",
			wantField: "template.cost",
		},
		{
			name:      "bad difficulty",
			yaml:      "template: {id: '1', name: X, totalTime: 10, difficulty: Extreme}",
			wantField: "template.difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr), "error %v is not an AppError", err)
			assert.Equal(t, tt.wantField, appErr.Field)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("template: {id: '1', name: X, total_time: 10}"))
	assert.Error(t, err)
}

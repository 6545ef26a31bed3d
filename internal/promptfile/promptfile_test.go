// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package promptfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/negation-engine/pkg/types"
)

func TestWriteRound(t *testing.T) {
	r := types.Round{
		ID:             "round-1",
		Items:          []string{"cat", "dog"},
		Negated:        []string{"not cat", "no dog"},
		BadDescriptors: []string{"Polka cat", "Disco dog", "Swing cat"},
		Combined:       []string{"not cat", "no dog", "Polka cat"},
		Positive:       []string{"cat", "dog", "cat"},
		Budget:         1000,
		Seed:           42,
		GeneratedAt:    time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC),
	}

	path := filepath.Join(t.TempDir(), "round.yaml")
	require.NoError(t, WriteRound(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rf RoundFile
	require.NoError(t, yaml.Unmarshal(data, &rf))

	assert.Equal(t, "round-1", rf.Round.ID)
	assert.Equal(t, r.Combined, rf.Round.Combined)
	assert.Equal(t, r.Positive, rf.Round.Positive)
	assert.Equal(t, int64(42), rf.Round.Seed)

	assert.Equal(t, 2, rf.Summary.Items)
	assert.Equal(t, 3, rf.Summary.Combined)
	// Three candidate descriptor terms, one accepted.
	assert.Equal(t, 2, rf.Summary.Dropped)
	assert.False(t, rf.Summary.SavedAt.IsZero())
}

func TestReadItems(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "trims and drops empties",
			content: "items:\n  - cat\n  - '  dog  '\n  - ''\n  - '   '\n",
			want:    []string{"cat", "dog"},
		},
		{
			name:    "empty list",
			content: "items: []\n",
			wantErr: true,
		},
		{
			name:    "only blank entries",
			content: "items:\n  - ''\n  - '  '\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			content: "items: [unclosed\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "items.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := ReadItems(path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadItemsMissingFile(t *testing.T) {
	_, err := ReadItems(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

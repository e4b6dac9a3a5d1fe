package version_test

import (
	"slices"
	"testing"

	"github.com/sqlbundle/sqlbundle/pkg/version"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
		want     version.Version
		wantName string
	}{
		{
			name:     "simple_version",
			filename: "1.2.3-AddUsers.sql",
			want:     version.Version{Major: 1, Minor: 2, Patch: 3},
			wantName: "1.2.3-AddUsers",
		},
		{
			name:     "multi_digit_components",
			filename: "12.345.6789-WidenColumns.sql",
			want:     version.Version{Major: 12, Minor: 345, Patch: 6789},
			wantName: "12.345.6789-WidenColumns",
		},
		{
			name:     "zero_components",
			filename: "0.0.0-Baseline.sql",
			want:     version.Version{},
			wantName: "0.0.0-Baseline",
		},
		{
			name:     "label_with_punctuation",
			filename: "2.0.1-Add-User_Email.sql",
			want:     version.Version{Major: 2, Minor: 0, Patch: 1},
			wantName: "2.0.1-Add-User_Email",
		},
		{
			name:     "no_version_prefix",
			filename: "init.sql",
			wantErr:  true,
		},
		{
			name:     "two_component_version",
			filename: "1.2-AddUsers.sql",
			wantErr:  true,
		},
		{
			name:     "missing_label",
			filename: "1.2.3-.sql",
			wantErr:  true,
		},
		{
			name:     "missing_separator",
			filename: "1.2.3AddUsers.sql",
			wantErr:  true,
		},
		{
			name:     "wrong_extension",
			filename: "1.2.3-AddUsers.txt",
			wantErr:  true,
		},
		{
			name:     "non_numeric_component",
			filename: "1.two.3-AddUsers.sql",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, name, err := version.Parse(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, v)
			require.Equal(t, tt.wantName, name)
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b version.Version
		want int
	}{
		{"equal", version.Version{1, 2, 3}, version.Version{1, 2, 3}, 0},
		{"major_wins", version.Version{2, 0, 0}, version.Version{1, 99, 99}, 1},
		{"minor_wins", version.Version{1, 10, 0}, version.Version{1, 9, 99}, 1},
		{"patch_breaks_tie", version.Version{1, 2, 3}, version.Version{1, 2, 4}, -1},
		{"numeric_not_lexical", version.Version{1, 2, 0}, version.Version{1, 10, 0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Compare(tt.b))
			require.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestSortOrder(t *testing.T) {
	// Exercises the numeric-vs-lexical pitfall: lexically "1.10.0" < "1.2.0".
	versions := []version.Version{
		{1, 10, 0},
		{2, 0, 0},
		{1, 2, 0},
		{1, 9, 0},
	}

	slices.SortFunc(versions, version.Version.Compare)

	require.Equal(t, []version.Version{
		{1, 2, 0},
		{1, 9, 0},
		{1, 10, 0},
		{2, 0, 0},
	}, versions)
}

func TestString(t *testing.T) {
	require.Equal(t, "1.10.0", version.Version{Major: 1, Minor: 10}.String())
}

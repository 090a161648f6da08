package brew

import (
	"testing"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wgetJSON = `[
  {
    "name": "wget",
    "full_name": "wget",
    "oldnames": [],
    "desc": "Internet file retriever",
    "dependencies": ["libidn2", "openssl@3"],
    "build_dependencies": ["pkgconf"],
    "versions": {"stable": "1.24.5", "head": "HEAD", "bottle": true},
    "installed": [
      {
        "version": "1.24.5",
        "runtime_dependencies": [
          {"full_name": "libunistring", "version": "1.2", "declared_directly": false},
          {"full_name": "libidn2", "version": "2.3.7", "declared_directly": true}
        ],
        "installed_on_request": true
      }
    ]
  }
]`

func TestParseFormulae(t *testing.T) {
	formulae, err := ParseFormulae([]byte(wgetJSON))
	require.NoError(t, err)
	require.Len(t, formulae, 1)

	f := formulae[0]
	assert.Equal(t, "wget", f.FullName)
	assert.Empty(t, f.OldNames)
	assert.Equal(t, []string{"libidn2", "openssl@3"}, f.Dependencies)
	assert.Equal(t, []string{"pkgconf"}, f.BuildDependencies)
	assert.True(t, f.Bottle)
	require.Len(t, f.Installed, 1)
	assert.Equal(t, []string{"libunistring", "libidn2"}, f.Installed[0].RuntimeDependencies)
}

func TestParseFormulae_EmptyArray(t *testing.T) {
	formulae, err := ParseFormulae([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, formulae)
}

func TestParseFormulae_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:  "malformed json",
			input: `[{"full_name": "wget"`,
		},
		{
			name:  "not an array",
			input: `{"full_name": "wget"}`,
		},
		{
			name:    "null document",
			input:   `null`,
			wantMsg: "expected a JSON array",
		},
		{
			name:  "wrong type",
			input: `[{"full_name": 42, "oldnames": [], "dependencies": [], "build_dependencies": [], "versions": {"bottle": true}, "installed": []}]`,
		},
		{
			name:    "missing full_name",
			input:   `[{"oldnames": [], "dependencies": [], "build_dependencies": [], "versions": {"bottle": true}, "installed": []}]`,
			wantMsg: `"full_name" is missing`,
		},
		{
			name:    "missing bottle flag",
			input:   `[{"full_name": "a", "oldnames": [], "dependencies": [], "build_dependencies": [], "versions": {"stable": "1"}, "installed": []}]`,
			wantMsg: `"versions.bottle" is missing`,
		},
		{
			name:    "null dependencies",
			input:   `[{"full_name": "a", "oldnames": [], "dependencies": null, "build_dependencies": [], "versions": {"bottle": true}, "installed": []}]`,
			wantMsg: `"dependencies" is missing`,
		},
		{
			name:    "missing runtime dependencies",
			input:   `[{"full_name": "a", "oldnames": [], "dependencies": [], "build_dependencies": [], "versions": {"bottle": true}, "installed": [{"version": "1"}]}]`,
			wantMsg: `"installed.runtime_dependencies" is missing`,
		},
		{
			name:    "bad record after good one",
			input:   `[{"full_name": "a", "oldnames": [], "dependencies": [], "build_dependencies": [], "versions": {"bottle": true}, "installed": []}, {"full_name": "b"}]`,
			wantMsg: "index 1",
		},
		{
			name:    "invalid utf-8",
			input:   "[\xff]",
			wantMsg: "not valid UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formulae, err := ParseFormulae([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, formulae)
			assert.True(t, errors.IsErrorCode(err, errors.ErrBrewDecode), "got %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

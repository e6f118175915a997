package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePayoutPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "french mobile with national format",
			input: "06 12 34 56 78",
			want:  "+33612345678",
		},
		{
			name:  "french mobile already E164",
			input: "+33612345678",
			want:  "+33612345678",
		},
		{
			name:  "US number with prefix",
			input: "+1 415 555 2671",
			want:  "+14155552671",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-phone",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "0612",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePayoutPhone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegion(t *testing.T) {
	assert.Equal(t, "FR", Region("+33612345678"))
	assert.Equal(t, "US", Region("+14155552671"))
	assert.Equal(t, "", Region("garbage"))
}

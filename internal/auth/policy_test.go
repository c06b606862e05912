package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateEmail("carrier@example.com"))
	require.Error(t, ValidateEmail(""))
	require.Error(t, ValidateEmail("not-an-email"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Abcdef1!", false},
		{"valid long", "Str0ngPassw0rd&", false},
		{"empty", "", true},
		{"too short", "Ab1!", true},
		{"no lowercase", "ABCDEF1!", true},
		{"no uppercase", "abcdef1!", true},
		{"no digit", "Abcdefg!", true},
		{"no symbol", "Abcdefg1", true},
		{"outside alphabet", "Abcdef1! ", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tc.password)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

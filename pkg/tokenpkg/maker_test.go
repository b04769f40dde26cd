package tokenpkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/devbank/pkg/randompkg"
)

func TestNewMaker(t *testing.T) {
	key := randompkg.String(32)

	for _, kind := range []string{"", "paseto", "jwt"} {
		maker, err := NewMaker(kind, key)
		require.NoError(t, err, kind)

		token, _, err := maker.CreateToken("u1", "ROLE_ADMIN", time.Minute)
		require.NoError(t, err, kind)

		payload, err := maker.VerifyToken(token)
		require.NoError(t, err, kind)
		require.Equal(t, "u1", payload.UserID)
	}

	_, err := NewMaker("macaroon", key)
	require.Error(t, err)
}

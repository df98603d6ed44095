package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/helpers/dbtime"
)

func date(s string) time.Time {
	d, err := dbtime.ParseDateKey(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCatalogSessionsFor(t *testing.T) {
	tests := []struct {
		name    string
		dateKey string
		want    int
	}{
		{"minggu enam sesi", "2025-06-08", 6},
		{"sabtu dua sesi", "2025-06-07", 2},
		{"senin kosong", "2025-06-09", 0},
		{"rabu kosong", "2025-06-11", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CatalogSessionsFor(date(tt.dateKey))
			assert.Len(t, got, tt.want)
			for _, s := range got {
				assert.NotEqual(t, SesiSemua, s, "katalog tidak boleh mengandung pseudo-sesi")
			}
		})
	}
}

func TestSessionsFor_PseudoSessionPrepend(t *testing.T) {
	today := date("2025-06-30")

	// Minggu di masa lalu → SesiSemua di depan
	got := SessionsFor(date("2025-06-08"), today)
	require.Len(t, got, 7)
	assert.Equal(t, SesiSemua, got[0])

	// Tepat hari ini juga dapat (date <= today)
	gotToday := SessionsFor(date("2025-06-29"), today) // Minggu
	require.Len(t, gotToday, 7)
	assert.Equal(t, SesiSemua, gotToday[0])

	// Minggu di masa depan → TIDAK pernah dapat pseudo-sesi
	gotFuture := SessionsFor(date("2025-07-06"), today)
	require.Len(t, gotFuture, 6)
	assert.NotEqual(t, SesiSemua, gotFuture[0])

	// Hari kosong → tetap kosong walau masa lalu
	assert.Empty(t, SessionsFor(date("2025-06-09"), today))
}

func TestIsCatalogSession(t *testing.T) {
	sunday := date("2025-06-08")
	assert.True(t, IsCatalogSession(sunday, "Kebaktian I : 07:00"))
	assert.False(t, IsCatalogSession(sunday, "Kebaktian Pemuda : 17:00")) // sesi Sabtu
	assert.False(t, IsCatalogSession(sunday, SesiSemua))
}

package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitgeorgia/transfers/internal/currency"
	"github.com/visitgeorgia/transfers/pkg/i18n"
	"github.com/visitgeorgia/transfers/pkg/redis"
)

func newMockStore(t *testing.T) (*RedisStore, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	return NewRedisStore(&redis.Client{Client: client}), mock
}

func TestRedisStoreLoadMissingReturnsDefaults(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectGet("preferences:client-1").RedisNil()

	p, err := store.Load(context.Background(), "client-1")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreLoadStoredValue(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectGet("preferences:client-1").SetVal(`{"language":"he","currency":"GEL"}`)

	p, err := store.Load(context.Background(), "client-1")
	require.NoError(t, err)

	assert.Equal(t, i18n.Hebrew, p.Language)
	assert.Equal(t, currency.GEL, p.Currency)
}

func TestRedisStoreLoadNormalizesUnknownValues(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectGet("preferences:client-1").SetVal(`{"language":"fr","currency":"BTC"}`)

	p, err := store.Load(context.Background(), "client-1")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), p)
}

func TestRedisStoreLoadCorruptJSONReturnsDefaults(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectGet("preferences:client-1").SetVal("{not json")

	p, err := store.Load(context.Background(), "client-1")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), p)
}

func TestRedisStoreLoadError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectGet("preferences:client-1").SetErr(errors.New("connection refused"))

	_, err := store.Load(context.Background(), "client-1")
	assert.Error(t, err)
}

func TestRedisStoreSave(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectSet("preferences:client-1", `{"language":"ru","currency":"USD"}`, 0).SetVal("OK")

	err := store.Save(context.Background(), "client-1", Preferences{
		Language: i18n.Russian,
		Currency: currency.USD,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreSaveCanonicalizesValues(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectSet("preferences:client-1", `{"language":"en","currency":"USD"}`, 0).SetVal("OK")

	// A lowercase currency code from an older client is stored in
	// canonical form.
	err := store.Save(context.Background(), "client-1", Preferences{
		Language: i18n.English,
		Currency: "usd",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	p, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)

	want := Preferences{Language: i18n.Hebrew, Currency: currency.GEL}
	require.NoError(t, store.Save(ctx, "client-1", want))

	got, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Other clients are unaffected.
	other, err := store.Load(ctx, "client-2")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), other)
}

package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ekorolkova/famhealth/internal/server/repository"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	"github.com/ekorolkova/famhealth/internal/shared/utils"
)

// Все репозитории без подключённой базы отвечают ErrStoreUnavailable,
// не паникуя и не трогая драйвер. Это путь, по которому сервер живёт,
// когда Mongo не поднялась на старте.
func TestRepositories_NilDB_StoreUnavailable(t *testing.T) {
	ctx := context.Background()

	users := repository.NewUsersRepository(nil)
	_, err := users.Create(ctx, "a@b.com", "hash", "name")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	_, err = users.GetByEmail(ctx, "a@b.com")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	_, err = users.GetByID(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)

	families := repository.NewFamiliesRepository(nil)
	_, err = families.GetByOwner(ctx, "u1")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	_, err = families.Create(ctx, "u1", "My Family")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)

	members := repository.NewMembersRepository(nil)
	_, err = members.Create(ctx, "u1", utils.StrPtr("name"), nil)
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	_, err = members.List(ctx, "u1")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	err = members.Delete(ctx, "u1", primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)

	checks := repository.NewHealthChecksRepository(nil)
	_, err = checks.Create(ctx, "u1", nil, utils.StrPtr("ok"), nil)
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	_, err = checks.ListByMember(ctx, "u1", "m1")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)

	notes := repository.NewNotesRepository(nil)
	_, err = notes.Create(ctx, "u1", utils.StrPtr("text"), nil)
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	_, err = notes.List(ctx, "u1")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
}

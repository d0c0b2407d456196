package items

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"medialog/internal/store"
)

type fakeStore struct {
	created *store.Item
	updated *store.Item

	deletedID int64
	deleteErr error
}

func (f *fakeStore) CreateItem(ctx context.Context, item store.Item) (*store.Item, error) {
	item.ID = 1
	f.created = &item
	return &item, nil
}

func (f *fakeStore) ListItemsForUser(context.Context, string) ([]*store.Item, error) {
	return []*store.Item{}, nil
}

func (f *fakeStore) ListItemsForPlaylist(context.Context, int64) ([]*store.Item, error) {
	return []*store.Item{}, nil
}

func (f *fakeStore) UpdateItem(ctx context.Context, itemID int64, item store.Item) error {
	f.updated = &item
	return nil
}

func (f *fakeStore) DeleteItem(ctx context.Context, itemID int64) error {
	f.deletedID = itemID
	return f.deleteErr
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	fake := &fakeStore{}
	svc := New(fake)

	_, err := svc.Create(context.Background(), store.Item{
		Name:       "Dune",
		Status:     "done",
		PlaylistID: 5,
	})

	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "status", vErr.Field)
	require.Nil(t, fake.created)
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	rating := 11
	svc := New(&fakeStore{})

	_, err := svc.Create(context.Background(), store.Item{
		Name:       "Dune",
		Status:     store.StatusPending,
		Rating:     &rating,
		PlaylistID: 5,
	})

	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "rating", vErr.Field)
}

func TestCreateAcceptsAbsentRating(t *testing.T) {
	fake := &fakeStore{}
	svc := New(fake)

	item, err := svc.Create(context.Background(), store.Item{
		Name:       "Dune",
		Status:     store.StatusPending,
		PlaylistID: 5,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, item.ID)
	require.Nil(t, fake.created.Rating)
}

func TestUpdateValidatesBeforeStorage(t *testing.T) {
	fake := &fakeStore{}
	svc := New(fake)

	err := svc.Update(context.Background(), 1, store.Item{
		Status:     store.StatusPending,
		PlaylistID: 5,
	})

	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "name", vErr.Field)
	require.Nil(t, fake.updated)
}

func TestUpdatePassesAbsentFieldsThrough(t *testing.T) {
	fake := &fakeStore{}
	svc := New(fake)

	err := svc.Update(context.Background(), 1, store.Item{
		Name:       "Dune",
		Status:     store.StatusOnHold,
		PlaylistID: 5,
	})
	require.NoError(t, err)
	require.Nil(t, fake.updated.Rating)
	require.Nil(t, fake.updated.StatusNote)
}

func TestDeleteDelegates(t *testing.T) {
	fake := &fakeStore{}
	svc := New(fake)

	require.NoError(t, svc.Delete(context.Background(), 42))
	require.EqualValues(t, 42, fake.deletedID)
}

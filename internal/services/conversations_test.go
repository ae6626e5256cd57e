package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/common"
	"github.com/plateful/plateful/internal/models"
)

type fakeConversationAPI struct {
	listed    []models.Conversation
	listErr   error
	renameErr error
	deleteErr error
	renames   int
	deletes   int
}

func (f *fakeConversationAPI) ListConversations(context.Context) (models.Page[models.Conversation], error) {
	if f.listErr != nil {
		return models.Page[models.Conversation]{Items: []models.Conversation{}}, f.listErr
	}
	return models.Page[models.Conversation]{Items: f.listed, Total: len(f.listed)}, nil
}

func (f *fakeConversationAPI) RenameConversation(context.Context, int64, string) error {
	f.renames++
	return f.renameErr
}

func (f *fakeConversationAPI) DeleteConversation(context.Context, int64) error {
	f.deletes++
	return f.deleteErr
}

func conversations() []models.Conversation {
	return []models.Conversation{
		{ConversationID: 1, Title: "Dinner ideas"},
		{ConversationID: 2, Title: "Meal prep"},
	}
}

func TestConversationListRename(t *testing.T) {
	f := &fakeConversationAPI{listed: conversations()}
	l := NewConversationList(f)
	require.NoError(t, l.Load(context.Background()))

	require.NoError(t, l.Rename(context.Background(), 2, "  Weekly meal prep  "))
	assert.Equal(t, "Weekly meal prep", l.Items()[1].Title)
	assert.Equal(t, 1, f.renames)
}

func TestConversationListRenameEmptyTitleRejectedLocally(t *testing.T) {
	f := &fakeConversationAPI{listed: conversations()}
	l := NewConversationList(f)
	require.NoError(t, l.Load(context.Background()))

	err := l.Rename(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, common.ErrEmptyTitle)
	assert.Equal(t, 0, f.renames)
	assert.Equal(t, "Dinner ideas", l.Items()[0].Title)
}

func TestConversationListRenameRevertsOnFailure(t *testing.T) {
	f := &fakeConversationAPI{listed: conversations(), renameErr: errors.New("boom")}
	l := NewConversationList(f)
	require.NoError(t, l.Load(context.Background()))

	err := l.Rename(context.Background(), 1, "Brunch ideas")
	require.Error(t, err)
	assert.Equal(t, "Dinner ideas", l.Items()[0].Title)
}

func TestConversationListDelete(t *testing.T) {
	f := &fakeConversationAPI{listed: conversations()}
	l := NewConversationList(f)
	require.NoError(t, l.Load(context.Background()))

	require.NoError(t, l.Delete(context.Background(), 1))
	require.Len(t, l.Items(), 1)
	assert.Equal(t, int64(2), l.Items()[0].ConversationID)

	// unknown id: nothing removed, nothing sent
	require.NoError(t, l.Delete(context.Background(), 99))
	assert.Len(t, l.Items(), 1)
	assert.Equal(t, 1, f.deletes)
}

func TestConversationListDeleteRollsBackOnFailure(t *testing.T) {
	f := &fakeConversationAPI{listed: conversations(), deleteErr: errors.New("boom")}
	l := NewConversationList(f)
	require.NoError(t, l.Load(context.Background()))

	err := l.Delete(context.Background(), 1)
	require.Error(t, err)
	require.Len(t, l.Items(), 2)
	assert.Equal(t, int64(1), l.Items()[0].ConversationID)
}

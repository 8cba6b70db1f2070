package catalogsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestItemStore_DecrementStockCommand(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("trừ có điều kiện và trả về bản ghi trước khi trừ", func(mt *mtest.T) {
		store := NewItemStoreWithCollection(mt.Coll)
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "P1"},
			{Key: "price", Value: int64(10000)},
			{Key: "quantity", Value: int64(10)},
		}}))

		before, err := store.DecrementStock(context.Background(), id, 3)
		require.NoError(mt, err)
		assert.Equal(mt, int64(10), before.Quantity)
		assert.Equal(mt, utility.Money(10000), before.Price)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "findAndModify", started.CommandName)

		cmd := started.Command
		assert.Equal(mt, id, cmd.Lookup("query", "_id").ObjectID())
		assert.Equal(mt, int64(3), cmd.Lookup("query", "quantity", "$gte").Int64())
		assert.Equal(mt, int64(-3), cmd.Lookup("update", "$inc", "quantity").Int64())
		assert.False(mt, cmd.Lookup("new").Boolean(), "phải trả về bản ghi trước khi cập nhật")
	})

	mt.Run("không khớp điều kiện trả về ErrNotFound", func(mt *mtest.T) {
		store := NewItemStoreWithCollection(mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := store.DecrementStock(context.Background(), primitive.NewObjectID(), 3)
		assert.True(mt, errors.Is(err, common.ErrNotFound))
	})

	mt.Run("hoàn kho cộng lại không điều kiện", func(mt *mtest.T) {
		store := NewItemStoreWithCollection(mt.Coll)
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "quantity", Value: int64(10)},
		}}))

		require.NoError(mt, store.IncrementStock(context.Background(), id, 3))

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, id, cmd.Lookup("query", "_id").ObjectID())
		_, err := cmd.LookupErr("query", "quantity")
		assert.Error(mt, err, "hoàn kho không kèm điều kiện tồn kho")
		assert.Equal(mt, int64(3), cmd.Lookup("update", "$inc", "quantity").Int64())
	})
}

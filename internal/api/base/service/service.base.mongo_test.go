package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_PlainStructWrapsInSet(t *testing.T) {
	type patch struct {
		Name  string `bson:"name,omitempty"`
		Phone string `bson:"phone,omitempty"`
	}

	update, err := ToUpdateData(patch{Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, "A", update.Set["name"])
	_, hasPhone := update.Set["phone"]
	assert.False(t, hasPhone)
	assert.Nil(t, update.Inc)
}

func TestToUpdateData_Operators(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$inc":   bson.M{"quantity": -3},
		"$unset": map[string]interface{}{"resetCode": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, -3, update.Inc["quantity"])
	assert.Contains(t, update.Unset, "resetCode")
	assert.Nil(t, update.Set)

	same, err := ToUpdateData(update)
	require.NoError(t, err)
	assert.Same(t, update, same)
}

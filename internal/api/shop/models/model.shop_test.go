package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestShopFilter_Matches(t *testing.T) {
	active := true
	shop := Shop{ID: primitive.NewObjectID(), CNIC: "123", City: "Lahore", IsActive: true}

	assert.True(t, ShopFilter{}.Matches(shop))
	assert.True(t, ShopFilter{City: "Lahore", IsActive: &active}.Matches(shop))
	assert.False(t, ShopFilter{City: "Karachi"}.Matches(shop))
	assert.False(t, ShopFilter{CNIC: "123", ExcludeID: shop.ID}.Matches(shop))
}

func TestShopUpdate_ApplyAndSet(t *testing.T) {
	name := "Cửa hàng mới"
	inactive := false
	up := ShopUpdate{ShopName: &name, IsActive: &inactive}

	shop := Shop{ShopName: "cũ", City: "Lahore", IsActive: true}
	up.Apply(&shop)
	assert.Equal(t, "Cửa hàng mới", shop.ShopName)
	assert.Equal(t, "Lahore", shop.City)
	assert.False(t, shop.IsActive)

	assert.Equal(t, map[string]interface{}{"shopName": name, "isActive": false}, up.ToSet())
}

package shopsvc

import (
	"context"
	"errors"
	"testing"

	shopdto "github.com/tanavishali52/BE-saleman/internal/api/shop/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ ShopRepository = (*storetest.Shops)(nil)

func newShopInput(cnic, city string) *shopdto.CreateShopInput {
	return &shopdto.CreateShopInput{
		ShopName:    "Cửa hàng " + cnic,
		OwnerName:   "Chủ " + cnic,
		CNIC:        cnic,
		PhoneNumber: "0300",
		Address:     "Số 1",
		City:        city,
	}
}

func TestShopService_CreateAndUniqueCNIC(t *testing.T) {
	svc := NewShopService(storetest.NewShops())
	ctx := context.Background()

	shop, err := svc.Create(ctx, newShopInput("111", "Lahore"))
	require.NoError(t, err)
	assert.True(t, shop.IsActive)

	_, err = svc.Create(ctx, newShopInput("111", "Karachi"))
	assert.True(t, errors.Is(err, common.ErrAlreadyExists))
}

func TestShopService_ListFilters(t *testing.T) {
	svc := NewShopService(storetest.NewShops())
	ctx := context.Background()

	a, _ := svc.Create(ctx, newShopInput("1", "Lahore"))
	_, _ = svc.Create(ctx, newShopInput("2", "Lahore"))
	_, _ = svc.Create(ctx, newShopInput("3", "Karachi"))
	_, err := svc.SetStatus(ctx, a.ID, false)
	require.NoError(t, err)

	result, err := svc.List(ctx, models.ShopFilter{City: "Lahore"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Total)

	active := true
	result, err = svc.List(ctx, models.ShopFilter{City: "Lahore", IsActive: &active}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	assert.Equal(t, "2", result.Items[0].CNIC)
}

func TestShopService_UpdateRechecksCNIC(t *testing.T) {
	svc := NewShopService(storetest.NewShops())
	ctx := context.Background()

	a, _ := svc.Create(ctx, newShopInput("1", "Lahore"))
	_, _ = svc.Create(ctx, newShopInput("2", "Lahore"))

	taken := "2"
	_, err := svc.Update(ctx, a.ID, &shopdto.UpdateShopInput{CNIC: &taken})
	assert.True(t, errors.Is(err, common.ErrAlreadyExists))

	same := "1"
	city := "Multan"
	updated, err := svc.Update(ctx, a.ID, &shopdto.UpdateShopInput{CNIC: &same, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Multan", updated.City)

	_, err = svc.Update(ctx, primitive.NewObjectID(), &shopdto.UpdateShopInput{City: &city})
	assert.True(t, errors.Is(err, common.ErrShopNotFound))
}

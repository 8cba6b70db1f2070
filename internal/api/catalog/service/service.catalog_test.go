package catalogsvc

import (
	"context"
	"errors"
	"testing"

	catalogdto "github.com/tanavishali52/BE-saleman/internal/api/catalog/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/storetest"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ CategoryRepository = (*storetest.Categories)(nil)
	_ ItemRepository     = (*storetest.Items)(nil)
)

func TestCategoryService_UniqueName(t *testing.T) {
	svc := NewCategoryService(storetest.NewCategories())
	ctx := context.Background()

	_, err := svc.Create(ctx, &catalogdto.CreateCategoryInput{Name: "Đồ uống"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &catalogdto.CreateCategoryInput{Name: " Đồ uống "})
	assert.True(t, errors.Is(err, common.ErrAlreadyExists))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestItemService_CreateRequiresCategory(t *testing.T) {
	categories := storetest.NewCategories()
	svc := NewItemService(storetest.NewItems(), categories)
	ctx := context.Background()

	_, err := svc.Create(ctx, &catalogdto.CreateItemInput{
		Name: "Nước ngọt", CategoryType: primitive.NewObjectID().Hex(), Price: 100, Quantity: 10,
	})
	assert.True(t, errors.Is(err, common.ErrCategoryNotFound))

	category, err := categories.Create(ctx, models.Category{Name: "Đồ uống"})
	require.NoError(t, err)

	view, err := svc.Create(ctx, &catalogdto.CreateItemInput{
		Name: "Nước ngọt", CategoryType: category.ID.Hex(), Price: utility.Money(1250), Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, utility.Money(1250), view.Price)
	require.NotNil(t, view.Category)
	assert.Equal(t, "Đồ uống", view.Category.Name)
}

func TestItemService_ListByCategoryAndUpdate(t *testing.T) {
	categories := storetest.NewCategories()
	svc := NewItemService(storetest.NewItems(), categories)
	ctx := context.Background()

	drinks, _ := categories.Create(ctx, models.Category{Name: "Đồ uống"})
	snacks, _ := categories.Create(ctx, models.Category{Name: "Bánh kẹo"})

	a, err := svc.Create(ctx, &catalogdto.CreateItemInput{Name: "A", CategoryType: drinks.ID.Hex(), Price: 100, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &catalogdto.CreateItemInput{Name: "B", CategoryType: snacks.ID.Hex(), Price: 200, Quantity: 2})
	require.NoError(t, err)

	result, err := svc.List(ctx, models.ItemFilter{CategoryType: drinks.ID}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	assert.Equal(t, "A", result.Items[0].Name)

	negative := int64(-1)
	_, err = svc.Update(ctx, a.ID, &catalogdto.UpdateItemInput{Quantity: &negative})
	assert.True(t, common.HasCode(err, common.ErrCodeValidationInput))

	missing := primitive.NewObjectID().Hex()
	_, err = svc.Update(ctx, a.ID, &catalogdto.UpdateItemInput{CategoryType: &missing})
	assert.True(t, errors.Is(err, common.ErrCategoryNotFound))

	snackID := snacks.ID.Hex()
	price := utility.Money(150)
	updated, err := svc.Update(ctx, a.ID, &catalogdto.UpdateItemInput{CategoryType: &snackID, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, snacks.ID, updated.CategoryType)
	assert.Equal(t, utility.Money(150), updated.Price)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.Get(ctx, a.ID)
	assert.True(t, errors.Is(err, common.ErrProductNotFound))
}

package inventory

import (
	"math"
	"testing"

	"stockroom/internal/database"
	"stockroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	verr, ok := asValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, msg, verr.Message)
}

func TestNameTaken(t *testing.T) {
	db := database.NewTestDB(t)
	carrot, err := CreateProduct(db, "carrot", "vegetable")
	require.NoError(t, err)

	taken, err := NameTaken(db, &models.Product{}, "carrot", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = NameTaken(db, &models.Product{}, "carrot", carrot.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a record never conflicts with itself")

	taken, err = NameTaken(db, &models.Location{}, "carrot", 0)
	require.NoError(t, err)
	assert.False(t, taken, "names are unique per entity type")
}

func TestCreateProduct_Duplicate(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := CreateProduct(db, " carrot ", "vegetable")
	require.NoError(t, err)

	_, err = CreateProduct(db, "carrot", "again")
	requireValidation(t, err, "Product name exists")

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProduct(t *testing.T) {
	db := database.NewTestDB(t)
	rice, err := CreateProduct(db, "Rice", "Oryza Sativa")
	require.NoError(t, err)
	carrot, err := CreateProduct(db, "carrot", "vegetable")
	require.NoError(t, err)

	require.NoError(t, UpdateProduct(db, carrot, "carrot", "Can be used for cooking"))
	assert.Equal(t, "Can be used for cooking", carrot.Description)

	err = UpdateProduct(db, carrot, "Rice", "Oryza Sativa")
	requireValidation(t, err, "Product name exists")
	assert.Equal(t, "carrot", carrot.Name)

	stored, err := FindProductByName(db, "Rice")
	require.NoError(t, err)
	assert.Equal(t, rice.ID, stored.ID)
}

func TestUpdateLocation_KeepsExternalFlag(t *testing.T) {
	db := database.NewTestDB(t)
	abroad, err := FindLocationByName(db, "Abroad")
	require.NoError(t, err)

	require.NoError(t, UpdateLocation(db, abroad, "Outside", "Suppliers"))

	stored, err := FindLocationByName(db, "Outside")
	require.NoError(t, err)
	assert.True(t, stored.IsExternal)

	_, err = FindLocationByName(db, "Abroad")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateLocation_Duplicate(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := CreateLocation(db, "ooty", "capital of nilgiri")
	require.NoError(t, err)
	_, err = CreateLocation(db, "ooty", "capital of nilgiri")
	requireValidation(t, err, "Location name exists")
}

type fixture struct {
	db                *gorm.DB
	carrot, rice      *models.Product
	abroad, ooty, cbe *models.Location
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := database.NewTestDB(t)
	f := fixture{db: db}
	var err error
	f.carrot, err = CreateProduct(db, "carrot", "vegetable")
	require.NoError(t, err)
	f.rice, err = CreateProduct(db, "rice", "grain")
	require.NoError(t, err)
	f.abroad, err = FindLocationByName(db, "Abroad")
	require.NoError(t, err)
	f.ooty, err = CreateLocation(db, "ooty", "capital of nilgiri")
	require.NoError(t, err)
	f.cbe, err = CreateLocation(db, "coimbatore", "City near ooty")
	require.NoError(t, err)
	return f
}

func (f fixture) move(t *testing.T, p *models.Product, from, to *models.Location, qty int64) error {
	t.Helper()
	_, err := RecordMovement(f.db, MovementInput{
		ProductID:      p.ID,
		FromLocationID: from.ID,
		ToLocationID:   to.ID,
		Qty:            qty,
	})
	return err
}

func TestRecordMovement_QuantityConstraint(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.move(t, f.carrot, f.abroad, f.ooty, 10))

	err := f.move(t, f.carrot, f.ooty, f.cbe, 15)
	requireValidation(t, err, "Only a maximum of 10 can be moved from this location")

	require.NoError(t, f.move(t, f.carrot, f.ooty, f.cbe, 5))

	avail, err := Available(f.db, f.carrot.ID, f.ooty.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), avail)

	avail, err = Available(f.db, f.carrot.ID, f.cbe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), avail)

	// exactly the available quantity is allowed
	require.NoError(t, f.move(t, f.carrot, f.ooty, f.cbe, 5))
	err = f.move(t, f.carrot, f.ooty, f.cbe, 1)
	requireValidation(t, err, "Only a maximum of 0 can be moved from this location")
}

func TestRecordMovement_ScopedByProduct(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, f.carrot, f.abroad, f.ooty, 10))

	err := f.move(t, f.rice, f.ooty, f.cbe, 1)
	requireValidation(t, err, "Only a maximum of 0 can be moved from this location")
}

func TestRecordMovement_ExternalSourceUnlimited(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.move(t, f.carrot, f.abroad, f.ooty, 1000))
	require.NoError(t, f.move(t, f.carrot, f.ooty, f.abroad, 400))

	avail, err := Available(f.db, f.carrot.ID, f.ooty.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(600), avail)
}

func TestRecordMovement_Rejections(t *testing.T) {
	f := newFixture(t)

	_, err := RecordMovement(f.db, MovementInput{ProductID: f.carrot.ID, FromLocationID: f.abroad.ID, ToLocationID: f.ooty.ID, Qty: 0})
	requireValidation(t, err, "Quantity must be at least 1")

	err = f.move(t, f.carrot, f.ooty, f.ooty, 1)
	requireValidation(t, err, "Source and destination must be different locations")

	_, err = RecordMovement(f.db, MovementInput{ProductID: 42, FromLocationID: f.abroad.ID, ToLocationID: f.ooty.ID, Qty: 1})
	requireValidation(t, err, "Unknown product")

	_, err = RecordMovement(f.db, MovementInput{ProductID: f.carrot.ID, FromLocationID: 42, ToLocationID: f.ooty.ID, Qty: 1})
	requireValidation(t, err, "Unknown source location")

	var count int64
	f.db.Model(&models.ProductMovement{}).Count(&count)
	assert.Zero(t, count)
}

func TestRecordMovement_QuantityCap(t *testing.T) {
	f := newFixture(t)

	err := f.move(t, f.carrot, f.abroad, f.ooty, math.MaxInt64)
	requireValidation(t, err, "Quantity must be at most 1000000000")

	require.NoError(t, f.move(t, f.carrot, f.abroad, f.ooty, MaxMovementQty))
	require.NoError(t, f.move(t, f.carrot, f.abroad, f.ooty, 1))

	avail, err := Available(f.db, f.carrot.ID, f.ooty.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(MaxMovementQty+1), avail)
}

func TestNamesWithSlash(t *testing.T) {
	db := database.NewTestDB(t)

	_, err := CreateProduct(db, "a/b", "")
	requireValidation(t, err, "Name must not contain /")
	_, err = CreateLocation(db, "x/y", "")
	requireValidation(t, err, "Name must not contain /")

	carrot, err := CreateProduct(db, "carrot", "")
	require.NoError(t, err)
	err = UpdateProduct(db, carrot, "car/rot", "")
	requireValidation(t, err, "Name must not contain /")
	assert.Equal(t, "carrot", carrot.Name)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLocationAndProductStock(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, f.carrot, f.abroad, f.ooty, 10))
	require.NoError(t, f.move(t, f.rice, f.abroad, f.ooty, 3))
	require.NoError(t, f.move(t, f.carrot, f.ooty, f.cbe, 4))
	require.NoError(t, f.move(t, f.rice, f.ooty, f.abroad, 3))

	lines, err := LocationStock(f.db, f.ooty)
	require.NoError(t, err)
	require.Len(t, lines, 1, "products with a zero balance are hidden")
	assert.Equal(t, "carrot", lines[0].ProductName)
	assert.Equal(t, int64(6), lines[0].Quantity)

	lines, err = ProductStock(f.db, f.carrot)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "coimbatore", lines[0].LocationName)
	assert.Equal(t, int64(4), lines[0].Quantity)
	assert.Equal(t, "ooty", lines[1].LocationName)
	assert.Equal(t, int64(6), lines[1].Quantity)

	cbeLines, err := LocationStock(f.db, f.cbe)
	require.NoError(t, err)
	require.Len(t, cbeLines, 1)
}

func TestListMovements_Filters(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, f.carrot, f.abroad, f.ooty, 10))
	require.NoError(t, f.move(t, f.rice, f.abroad, f.cbe, 2))
	require.NoError(t, f.move(t, f.carrot, f.ooty, f.cbe, 1))

	all, err := ListMovements(f.db, MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].Qty, "newest first")
	assert.Equal(t, "ooty", all[0].FromLocation.Name)

	byProduct, err := ListMovements(f.db, MovementFilter{ProductID: f.carrot.ID})
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	byLocation, err := ListMovements(f.db, MovementFilter{LocationID: f.cbe.ID, ProductID: f.carrot.ID})
	require.NoError(t, err)
	assert.Len(t, byLocation, 1)

	limited, err := ListMovements(f.db, MovementFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

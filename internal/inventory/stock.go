package inventory

import (
	"fmt"
	"sort"

	"stockroom/internal/models"

	"gorm.io/gorm"
)

// StockLine is the net quantity of one product at one location.
type StockLine struct {
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product"`
	LocationID   uint   `json:"location_id"`
	LocationName string `json:"location"`
	Quantity     int64  `json:"quantity"`
}

// Available returns the net quantity of a product at a location: everything
// moved in minus everything moved out. It is recomputed from the full
// movement history.
func Available(tx *gorm.DB, productID, locationID uint) (int64, error) {
	in, err := sumQty(tx, "product_id = ? AND to_location_id = ?", productID, locationID)
	if err != nil {
		return 0, err
	}
	out, err := sumQty(tx, "product_id = ? AND from_location_id = ?", productID, locationID)
	if err != nil {
		return 0, err
	}
	return in - out, nil
}

func sumQty(tx *gorm.DB, where string, args ...any) (int64, error) {
	var total int64
	row := tx.Model(&models.ProductMovement{}).
		Select("CAST(COALESCE(SUM(qty), 0) AS BIGINT)").
		Where(where, args...).
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("summing movements: %w", err)
	}
	return total, nil
}

type groupedSum struct {
	RefID uint
	Total int64
}

// sumsBy groups movement quantities by keyCol for rows matching filterCol = id.
func sumsBy(tx *gorm.DB, keyCol, filterCol string, id uint) (map[uint]int64, error) {
	var rows []groupedSum
	err := tx.Model(&models.ProductMovement{}).
		Select(keyCol + " AS ref_id, CAST(SUM(qty) AS BIGINT) AS total").
		Where(filterCol+" = ?", id).
		Group(keyCol).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("grouping movements by %s: %w", keyCol, err)
	}

	res := make(map[uint]int64, len(rows))
	for _, r := range rows {
		res[r.RefID] = r.Total
	}
	return res, nil
}

func netByKey(tx *gorm.DB, keyIn, filterIn, keyOut, filterOut string, id uint) (map[uint]int64, error) {
	in, err := sumsBy(tx, keyIn, filterIn, id)
	if err != nil {
		return nil, err
	}
	out, err := sumsBy(tx, keyOut, filterOut, id)
	if err != nil {
		return nil, err
	}
	for k, v := range out {
		in[k] -= v
	}
	for k, v := range in {
		if v == 0 {
			delete(in, k)
		}
	}
	return in, nil
}

// LocationStock lists the non-zero net quantity of every product at a location,
// ordered by product name.
func LocationStock(tx *gorm.DB, loc *models.Location) ([]StockLine, error) {
	net, err := netByKey(tx, "product_id", "to_location_id", "product_id", "from_location_id", loc.ID)
	if err != nil {
		return nil, err
	}
	if len(net) == 0 {
		return []StockLine{}, nil
	}

	var products []models.Product
	if err := tx.Where("id IN ?", keys(net)).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}

	lines := make([]StockLine, 0, len(products))
	for _, p := range products {
		lines = append(lines, StockLine{
			ProductID:    p.ID,
			ProductName:  p.Name,
			LocationID:   loc.ID,
			LocationName: loc.Name,
			Quantity:     net[p.ID],
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductName < lines[j].ProductName })
	return lines, nil
}

// ProductStock lists where a product currently sits. External locations are
// left out: their balance is not stock on hand.
func ProductStock(tx *gorm.DB, product *models.Product) ([]StockLine, error) {
	net, err := netByKey(tx, "to_location_id", "product_id", "from_location_id", "product_id", product.ID)
	if err != nil {
		return nil, err
	}
	if len(net) == 0 {
		return []StockLine{}, nil
	}

	var locations []models.Location
	if err := tx.Where("id IN ? AND is_external = ?", keys(net), false).Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}

	lines := make([]StockLine, 0, len(locations))
	for _, l := range locations {
		lines = append(lines, StockLine{
			ProductID:    product.ID,
			ProductName:  product.Name,
			LocationID:   l.ID,
			LocationName: l.Name,
			Quantity:     net[l.ID],
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].LocationName < lines[j].LocationName })
	return lines, nil
}

func keys(m map[uint]int64) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}

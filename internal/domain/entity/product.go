package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of product categories a seller can pick from.
type Category string

// Product categories. The values mirror the check constraint on the
// products table, so they are stored as-is.
const (
	CategoryFrutas     Category = "Frutas"
	CategoryVerduras   Category = "Verduras"
	CategoryLegumes    Category = "Legumes"
	CategoryTemperos   Category = "Temperos"
	CategoryGraos      Category = "Graos"
	CategoryOrganicos  Category = "Organicos"
	CategoryLaticinios Category = "Laticinios"
	CategoryOvos       Category = "Ovos"
	CategoryErvas      Category = "Ervas"
	CategoryOutros     Category = "Outros"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryFrutas, CategoryVerduras, CategoryLegumes, CategoryTemperos,
	CategoryGraos, CategoryOrganicos, CategoryLaticinios, CategoryOvos,
	CategoryErvas, CategoryOutros,
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	return slices.Contains(Categories, c)
}

// Measure is the closed set of units of measure a product can be sold by.
type Measure string

// Units of measure. The human-readable values are intentional; they are
// what the original catalog stores and displays.
const (
	MeasureKilograma  Measure = "kilograma (kg)"
	MeasureGrama      Measure = "grama (g)"
	MeasureUnidade    Measure = "unidade"
	MeasureCacho      Measure = "cacho"
	MeasureMaco       Measure = "maca"
	MeasureBandeja    Measure = "bandeja"
	MeasureDuzia      Measure = "duzia"
	MeasurePacote     Measure = "pacote"
	MeasureLitro      Measure = "litro (l)"
	MeasureMililitros Measure = "mililitros (ml)"
)

// Measures lists every valid unit of measure.
var Measures = []Measure{
	MeasureKilograma, MeasureGrama, MeasureUnidade, MeasureCacho, MeasureMaco,
	MeasureBandeja, MeasureDuzia, MeasurePacote, MeasureLitro, MeasureMililitros,
}

// IsValid checks if the Measure is a valid value.
func (m Measure) IsValid() bool {
	return slices.Contains(Measures, m)
}

// Product is a catalog entry owned by exactly one seller. Only the owning
// seller may create, update or delete it; everyone may read it.
type Product struct {
	ID          uuid.UUID // The unique identifier for the product.
	SellerID    uuid.UUID // The profile ID of the owning seller.
	Name        string    // Product display name.
	Description string    // Free-form description. Optional.
	Price       *float64  // Unit price. Nil until the seller sets it.
	Amount      int       // Stock count.
	ImageURL    string    // Public URL of the product image. Empty when no image was uploaded.
	Available   bool      // Whether the product shows up for buyers.
	Category    Category  // One of the closed category set.
	Measure     Measure   // One of the closed unit-of-measure set.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UnitPrice returns the product price, treating an unset price as zero.
func (p *Product) UnitPrice() float64 {
	if p.Price == nil {
		return 0
	}

	return *p.Price
}

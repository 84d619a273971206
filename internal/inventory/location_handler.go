package inventory

import (
	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// GET /locations
func ListLocationsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locations, err := ListLocations(db)
		if err != nil {
			return err
		}
		return render(c, "locations/index", fiber.Map{
			"Title":     "Locations",
			"Locations": locations,
		})
	}
}

func locationForm(c *fiber.Ctx, title, action string, form NamedForm, msg string) error {
	return render(c, "forms/named", fiber.Map{
		"Title":  title,
		"Kind":   "Location",
		"Action": action,
		"Cancel": "/locations",
		"Form":   form,
		"Error":  msg,
	})
}

// GET /locations/add
func NewLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return locationForm(c, "Add location", "/locations/add", NamedForm{}, "")
	}
}

// POST /locations/add
func CreateLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form NamedForm
		var created *models.Location
		err := parseForm(c, &form)
		if err == nil {
			created, err = CreateLocation(db, form.Name, form.Description)
		}
		if verr, ok := asValidation(err); ok {
			return locationForm(c, "Add location", "/locations/add", form, verr.Message)
		}
		if err != nil {
			return err
		}

		zerolog.Ctx(c.UserContext()).Info().
			Uint("location_id", created.ID).
			Str("name", created.Name).
			Msg("location created")
		return c.Redirect("/locations")
	}
}

// GET /locations/:name
// Shows the net quantity of every product held there.
func ShowLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, err := FindLocationByName(db, c.Params("name"))
		if err != nil {
			return notFound(err)
		}

		stock, err := LocationStock(db, loc)
		if err != nil {
			return err
		}
		movements, err := ListMovements(db, MovementFilter{LocationID: loc.ID, Limit: 50})
		if err != nil {
			return err
		}

		return render(c, "locations/show", fiber.Map{
			"Title":     loc.Name,
			"Location":  loc,
			"Stock":     stock,
			"Movements": movements,
		})
	}
}

// GET /locations/:name/edit
func EditLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, err := FindLocationByName(db, c.Params("name"))
		if err != nil {
			return notFound(err)
		}
		form := NamedForm{Name: loc.Name, Description: loc.Description}
		return locationForm(c, "Edit location", pathTo("/locations", loc.Name)+"/edit", form, "")
	}
}

// POST /locations/:name/edit
func UpdateLocationHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, err := FindLocationByName(db, c.Params("name"))
		if err != nil {
			return notFound(err)
		}
		action := pathTo("/locations", loc.Name) + "/edit"

		var form NamedForm
		err = parseForm(c, &form)
		if err == nil {
			err = UpdateLocation(db, loc, form.Name, form.Description)
		}
		if verr, ok := asValidation(err); ok {
			return locationForm(c, "Edit location", action, form, verr.Message)
		}
		if err != nil {
			return err
		}

		zerolog.Ctx(c.UserContext()).Info().
			Uint("location_id", loc.ID).
			Str("name", loc.Name).
			Msg("location updated")
		return c.Redirect(pathTo("/locations", loc.Name))
	}
}

type locationStockResponse struct {
	Location   string      `json:"location"`
	IsExternal bool        `json:"is_external"`
	Items      []StockLine `json:"items"`
}

// GET /api/locations/:name/stock
func LocationStockAPIHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, err := FindLocationByName(db, c.Params("name"))
		if err != nil {
			return notFound(err)
		}
		stock, err := LocationStock(db, loc)
		if err != nil {
			return err
		}
		return c.JSON(locationStockResponse{
			Location:   loc.Name,
			IsExternal: loc.IsExternal,
			Items:      stock,
		})
	}
}

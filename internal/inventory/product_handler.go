package inventory

import (
	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// GET /products
func ListProductsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := ListProducts(db)
		if err != nil {
			return err
		}
		return render(c, "products/index", fiber.Map{
			"Title":    "Products",
			"Products": products,
		})
	}
}

func productForm(c *fiber.Ctx, title, action string, form NamedForm, msg string) error {
	return render(c, "forms/named", fiber.Map{
		"Title":  title,
		"Kind":   "Product",
		"Action": action,
		"Cancel": "/products",
		"Form":   form,
		"Error":  msg,
	})
}

// GET /products/add
func NewProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return productForm(c, "Add product", "/products/add", NamedForm{}, "")
	}
}

// POST /products/add
func CreateProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form NamedForm
		var created *models.Product
		err := parseForm(c, &form)
		if err == nil {
			created, err = CreateProduct(db, form.Name, form.Description)
		}
		if verr, ok := asValidation(err); ok {
			return productForm(c, "Add product", "/products/add", form, verr.Message)
		}
		if err != nil {
			return err
		}

		zerolog.Ctx(c.UserContext()).Info().
			Uint("product_id", created.ID).
			Str("name", created.Name).
			Msg("product created")
		return c.Redirect("/products")
	}
}

// GET /products/:name
func ShowProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := FindProductByName(db, c.Params("name"))
		if err != nil {
			return notFound(err)
		}

		stock, err := ProductStock(db, p)
		if err != nil {
			return err
		}
		movements, err := ListMovements(db, MovementFilter{ProductID: p.ID, Limit: 50})
		if err != nil {
			return err
		}

		return render(c, "products/show", fiber.Map{
			"Title":     p.Name,
			"Product":   p,
			"Stock":     stock,
			"Movements": movements,
		})
	}
}

// GET /products/:name/edit
func EditProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := FindProductByName(db, c.Params("name"))
		if err != nil {
			return notFound(err)
		}
		form := NamedForm{Name: p.Name, Description: p.Description}
		return productForm(c, "Edit product", pathTo("/products", p.Name)+"/edit", form, "")
	}
}

// POST /products/:name/edit
func UpdateProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := FindProductByName(db, c.Params("name"))
		if err != nil {
			return notFound(err)
		}
		action := pathTo("/products", p.Name) + "/edit"

		var form NamedForm
		err = parseForm(c, &form)
		if err == nil {
			err = UpdateProduct(db, p, form.Name, form.Description)
		}
		if verr, ok := asValidation(err); ok {
			return productForm(c, "Edit product", action, form, verr.Message)
		}
		if err != nil {
			return err
		}

		zerolog.Ctx(c.UserContext()).Info().
			Uint("product_id", p.ID).
			Str("name", p.Name).
			Msg("product updated")
		return c.Redirect(pathTo("/products", p.Name))
	}
}

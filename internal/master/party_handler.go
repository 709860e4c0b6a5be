package master

import (
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PartyRequest struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	Location string   `json:"location"`
	Balance  *float64 `json:"balance"`
}

// POST /api/master/vendor-customers
func CreateVendorCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		p := models.VendorCustomer{Name: body.Name, Phone: body.Phone, Address: body.Address}
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create vendor-customer")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/master/vendor-customers
func ListVendorCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var parties []models.VendorCustomer
		if err := database.DB.Order("name asc").Find(&parties).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list vendor-customers")
		}
		return c.JSON(parties)
	}
}

// PUT /api/master/vendor-customers/:id
func UpdateVendorCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.VendorCustomer
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Vendor-customer not found")
		}

		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != "" {
			p.Name = body.Name
		}
		p.Phone = body.Phone
		p.Address = body.Address
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update vendor-customer")
		}
		return c.JSON(p)
	}
}

// DELETE /api/master/vendor-customers/:id
func DeleteVendorCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.VendorCustomer
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Vendor-customer not found")
		}
		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete vendor-customer")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/master/quarries
func CreateMineQuarryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		p := models.MineQuarry{Name: body.Name, Location: body.Location}
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create quarry")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/master/quarries
func ListMineQuarriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var parties []models.MineQuarry
		if err := database.DB.Order("name asc").Find(&parties).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list quarries")
		}
		return c.JSON(parties)
	}
}

// PUT /api/master/quarries/:id
func UpdateMineQuarryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.MineQuarry
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Quarry not found")
		}

		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != "" {
			p.Name = body.Name
		}
		p.Location = body.Location
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update quarry")
		}
		return c.JSON(p)
	}
}

// DELETE /api/master/quarries/:id
func DeleteMineQuarryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.MineQuarry
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Quarry not found")
		}
		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete quarry")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/master/transport-owners
func CreateTransportOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		p := models.TransportOwnerProfile{Name: body.Name, Phone: body.Phone}
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create transport owner")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/master/transport-owners
func ListTransportOwnersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var parties []models.TransportOwnerProfile
		if err := database.DB.Order("name asc").Find(&parties).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list transport owners")
		}
		return c.JSON(parties)
	}
}

// PUT /api/master/transport-owners/:id
func UpdateTransportOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.TransportOwnerProfile
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Transport owner not found")
		}

		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != "" {
			p.Name = body.Name
		}
		p.Phone = body.Phone
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update transport owner")
		}
		return c.JSON(p)
	}
}

// DELETE /api/master/transport-owners/:id
func DeleteTransportOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.TransportOwnerProfile
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Transport owner not found")
		}
		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete transport owner")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/master/royalty-owners
func CreateRoyaltyOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		p := models.RoyaltyOwnerProfile{Name: body.Name}
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create royalty owner")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/master/royalty-owners
func ListRoyaltyOwnersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var parties []models.RoyaltyOwnerProfile
		if err := database.DB.Order("name asc").Find(&parties).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list royalty owners")
		}
		return c.JSON(parties)
	}
}

// PUT /api/master/royalty-owners/:id
func UpdateRoyaltyOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.RoyaltyOwnerProfile
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Royalty owner not found")
		}

		var body PartyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != "" {
			p.Name = body.Name
		}
		if body.Balance != nil {
			p.Balance = *body.Balance
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update royalty owner")
		}
		return c.JSON(p)
	}
}

// DELETE /api/master/royalty-owners/:id
func DeleteRoyaltyOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.RoyaltyOwnerProfile
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Royalty owner not found")
		}
		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete royalty owner")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

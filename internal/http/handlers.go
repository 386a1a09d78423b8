package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crabbyteti/tambak-monitor/internal/chart"
	"github.com/crabbyteti/tambak-monitor/internal/domain"
	"github.com/crabbyteti/tambak-monitor/internal/report"
	"github.com/crabbyteti/tambak-monitor/internal/service"
)

type signUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addHarvestRequest struct {
	TambakID     int      `json:"tambak_id"`
	TanggalPanen string   `json:"tanggal_panen"`
	JumlahKg     float64  `json:"jumlah_kg"`
	HargaPerKg   *float64 `json:"harga_per_kg"`
	Keterangan   *string  `json:"keterangan"`
}

// Register mounts the API surface consumed by the desktop client.
// Business failures (wrong password, duplicate email) are 200 responses with
// success=false; only malformed requests get error status codes.
func Register(app *fiber.App, svcs *service.Services) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("signup", func(c *fiber.Ctx) error {
		var req signUpRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		// Confirmation equality is the caller's contract, not the service's.
		if req.Password != req.ConfirmPassword {
			return c.JSON(domain.AuthFailure("Password dan konfirmasi password tidak cocok"))
		}
		return c.JSON(svcs.Auth.SignUp(req.Name, req.Email, req.Password))
	})
	auth.Post("login", func(c *fiber.Ctx) error {
		var req logInRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		return c.JSON(svcs.Auth.LogIn(req.Email, req.Password))
	})

	dashboard := api.Group("/dashboard")
	dashboard.Get("summary", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return nil
		}
		return c.JSON(svcs.Dashboard.GetSummary(userID))
	})
	dashboard.Get("readings", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return nil
		}
		return c.JSON(svcs.Dashboard.GetRecentReadings(userID))
	})
	dashboard.Get("chart", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return nil
		}
		readings := svcs.Dashboard.GetRecentReadings(userID)
		return c.JSON(chart.Build(readings))
	})

	api.Get("ponds", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return nil
		}
		return c.JSON(svcs.Dashboard.GetPondsWithLatest(userID))
	})

	api.Post("harvests", func(c *fiber.Ctx) error {
		var req addHarvestRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if req.JumlahKg <= 0 {
			return c.JSON(domain.HarvestResult{Success: false, Message: "Jumlah panen harus berupa angka positif"})
		}
		if req.HargaPerKg != nil && *req.HargaPerKg <= 0 {
			return c.JSON(domain.HarvestResult{Success: false, Message: "Harga per kg harus berupa angka positif atau kosongkan"})
		}
		tanggal, err := time.Parse("2006-01-02", req.TanggalPanen)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tanggal_panen must be YYYY-MM-DD"})
		}
		return c.JSON(svcs.Dashboard.AddHarvest(req.TambakID, tanggal, req.JumlahKg, req.HargaPerKg, req.Keterangan))
	})

	api.Get("reports/harvest", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return nil
		}
		year := c.QueryInt("year", time.Now().Year())
		rows, err := svcs.Repos.ListHarvestsForYear(userID, year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		data, err := report.BuildHarvestReport(year, rows)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="laporan-panen-%d.xlsx"`, year))
		return c.Send(data)
	})
}

func requireUserID(c *fiber.Ctx) (int, bool) {
	userID := c.QueryInt("user_id")
	if userID <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
		return 0, false
	}
	return userID, true
}

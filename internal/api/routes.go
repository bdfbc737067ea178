package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	picker := api.Group("/picker")
	picker.Get("", handler.GetPicker)
	picker.Post("/select", handler.SelectDay)
	picker.Post("/navigate", handler.Navigate)
	picker.Post("/value", handler.WriteValue)
	picker.Post("/open", handler.OpenPicker)
	picker.Post("/close", handler.ClosePicker)
	picker.Get("/ics", handler.ExportICS)

	profiles := api.Group("/profiles")
	profiles.Get("", handler.ListProfiles)
	profiles.Get("/:name", handler.GetProfile)
	profiles.Put("/:name", handler.PutProfile)
	profiles.Delete("/:name", handler.DeleteProfile)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

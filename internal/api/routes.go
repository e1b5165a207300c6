package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Index)

	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.Logout)

	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard_data", handler.AuthRequired, handler.DashboardData)

	app.Get("/planner", handler.AuthRequired, handler.ShowPlanner)
	app.Post("/planner", handler.AuthRequired, handler.GeneratePlan)

	app.Get("/food_items", handler.AuthRequired, catalogGuard(handler.ShowFoodItems))
	app.Post("/food_items", handler.AuthRequired, catalogGuard(handler.FoodItemsAction))
	app.Post("/export_food_items", handler.AuthRequired, handler.ExportFoodItems)

	app.Get("/profile", handler.AuthRequired, handler.ShowProfile)
	app.Post("/profile", handler.AuthRequired, handler.ChangePassword)

	app.Get("/food/:id", handler.AuthRequired, handler.ShowFoodDetail)
	app.Post("/food/:id", handler.AuthRequired, handler.FoodDetailAction)
}

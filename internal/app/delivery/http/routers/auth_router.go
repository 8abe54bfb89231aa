package routers

import (
	"ayuraksha-service/internal/app/delivery/http/controllers"
	"ayuraksha-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authRateLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(authRateLimiter.Limit).Post("/login", authController.Login)
	router.With(authRateLimiter.Limit).Post("/signup", authController.Signup)
	router.Get("/callback", authController.Callback)
	router.Post("/logout", authController.Logout)
	router.With(mw.SessionRequired).Get("/me", authController.Me)
}

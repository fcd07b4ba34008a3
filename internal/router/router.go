package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Liveness(c *ginext.Context)
	IssueToken(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	CheckAdmin(c *ginext.Context)
	CheckDecorator(c *ginext.Context)
	PromoteUser(c *ginext.Context)

	ListServices(c *ginext.Context)
	GetService(c *ginext.Context)
	CreateService(c *ginext.Context)
	DeleteService(c *ginext.Context)

	ListBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)

	CreatePaymentIntent(c *ginext.Context)
	RecordPayment(c *ginext.Context)
	ListPayments(c *ginext.Context)

	AdminStats(c *ginext.Context)
}

// Guards are the per-route access checks. Admin is always chained after Auth.
type Guards struct {
	Auth  ginext.HandlerFunc
	Admin ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/", h.Liveness)
	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	// Public
	router.POST("/jwt", h.IssueToken)
	router.POST("/users", h.CreateUser)
	router.GET("/services", h.ListServices)
	router.GET("/services/:id", h.GetService)
	router.POST("/bookings", h.CreateBooking)

	authed := router.Group("/", g.Auth)
	{
		authed.GET("/users/admin/:email", h.CheckAdmin)
		authed.GET("/users/decorator/:email", h.CheckDecorator)

		authed.GET("/bookings", h.ListBookings)
		authed.DELETE("/bookings/:id", h.DeleteBooking)

		authed.POST("/create-payment-intent", h.CreatePaymentIntent)
		authed.POST("/payments", h.RecordPayment)
		authed.GET("/payments/:email", h.ListPayments)
	}

	admin := router.Group("/", g.Auth, g.Admin)
	{
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.PATCH("/users/admin/:id", h.PromoteUser)

		admin.POST("/services", h.CreateService)
		admin.DELETE("/services/:id", h.DeleteService)

		admin.PATCH("/bookings/:id", h.ConfirmBooking)

		admin.GET("/admin-stats", h.AdminStats)
	}

	return router
}

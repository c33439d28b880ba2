package handlers

import "github.com/gin-gonic/gin"

// Handlers groups every handler the router serves.
type Handlers struct {
	Health   *HealthHandler
	Mortgage *MortgageHandler
	Rental   *RentalHandler
	Strategy *StrategyHandler
	Metadata *MetadataHandler
	Property *PropertyHandler
}

// RegisterRoutes mounts the health checks and the v1 API on router.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	router.GET("/health", h.Health.Health)
	router.GET("/health/ready", h.Health.Ready)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/info", h.Health.Info)

		mortgage := v1.Group("/mortgage")
		{
			mortgage.POST("/calculate", h.Mortgage.Calculate)
			mortgage.POST("/calculate/schedule", h.Mortgage.Schedule)
			mortgage.POST("/affordability", h.Mortgage.Affordability)
		}

		rental := v1.Group("/rental")
		{
			rental.POST("/analyze", h.Rental.Analyze)
			rental.POST("/analyze/schedule", h.Rental.Schedule)
			rental.POST("/compare", h.Rental.Compare)
			rental.POST("/house-hacking", h.Rental.HouseHacking)
		}

		strategies := v1.Group("/strategies")
		{
			strategies.POST("/mao", h.Strategy.MAO)
			strategies.POST("/fix-and-flip", h.Strategy.FixAndFlip)
			strategies.POST("/brrrr", h.Strategy.BRRRR)
			strategies.POST("/wholesale", h.Strategy.Wholesale)
			strategies.POST("/airbnb", h.Strategy.Airbnb)
			strategies.POST("/commercial-noi", h.Strategy.CommercialNOI)
			strategies.POST("/value-add", h.Strategy.ValueAdd)
			strategies.POST("/syndication", h.Strategy.Syndication)
			strategies.POST("/hard-money", h.Strategy.HardMoney)
			strategies.POST("/private-lending", h.Strategy.PrivateLending)
			strategies.POST("/land-development", h.Strategy.LandDevelopment)
		}

		metadata := v1.Group("/metadata")
		{
			metadata.GET("/mortgage", h.Metadata.Mortgage)
			metadata.GET("/rental", h.Metadata.Rental)
		}

		properties := v1.Group("/properties")
		{
			properties.POST("", h.Property.Create)
			properties.GET("/:id", h.Property.Get)
			properties.GET("/:id/price-per-sqft", h.Property.PricePerSquareFoot)
		}
	}
}
